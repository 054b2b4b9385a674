package toolerr

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/crossplane/crossplane-runtime/pkg/errors"
)

func TestReasonFor(t *testing.T) {
	errBoom := errors.New("boom")

	cases := map[string]struct {
		reason  string
		err     error
		want    Reason
		wantMsg string
	}{
		"Nil": {
			reason: "A nil error has no reason.",
			err:    nil,
			want:   "",
		},
		"Unclassified": {
			reason:  "An error that was never classified is an upstream failure.",
			err:     errBoom,
			want:    UpstreamFailure,
			wantMsg: "boom",
		},
		"Classified": {
			reason:  "A classified error keeps its reason.",
			err:     New(ResourceNotFound, "Pod %s not found in namespace %s", "p1", "default"),
			want:    ResourceNotFound,
			wantMsg: "Pod p1 not found in namespace default",
		},
		"WrappedClassified": {
			reason:  "A classified error wrapped by another error keeps its reason.",
			err:     errors.Wrap(New(NoResourcesFound, "nothing"), "outer"),
			want:    NoResourcesFound,
			wantMsg: "outer: nothing",
		},
		"Wrap": {
			reason:  "Wrap prefixes the message and keeps the cause.",
			err:     Wrap(errBoom, UpstreamFailure, "failed to list pods"),
			want:    UpstreamFailure,
			wantMsg: "failed to list pods: boom",
		},
		"Classify": {
			reason:  "Classify attaches a reason without repeating the message.",
			err:     Classify(errors.Wrap(errBoom, "failed to list pods"), UpstreamFailure),
			want:    UpstreamFailure,
			wantMsg: "failed to list pods: boom",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, ReasonFor(tc.err)); diff != "" {
				t.Errorf("\n%s\nReasonFor(...): -want, +got:\n%s", tc.reason, diff)
			}
			if tc.err == nil {
				return
			}
			if diff := cmp.Diff(tc.wantMsg, tc.err.Error()); diff != "" {
				t.Errorf("\n%s\nError(): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, UpstreamFailure, "msg") != nil {
		t.Errorf("Wrap(nil, ...): expected nil")
	}

	errBoom := errors.New("boom")
	err := Wrap(errBoom, UpstreamFailure, "msg")
	if !errors.Is(err, errBoom) {
		t.Errorf("Wrap(...): expected the cause to be reachable with errors.Is")
	}
	if !Is(err, UpstreamFailure) {
		t.Errorf("Is(...): expected UpstreamFailure")
	}
}

func TestClassify(t *testing.T) {
	if Classify(nil, UpstreamFailure) != nil {
		t.Errorf("Classify(nil, ...): expected nil")
	}

	errBoom := errors.New("boom")
	err := Classify(errBoom, UpstreamFailure)
	if !errors.Is(err, errBoom) {
		t.Errorf("Classify(...): expected the cause to be reachable with errors.Is")
	}
}
