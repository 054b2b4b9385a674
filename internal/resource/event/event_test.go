package event

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
	"k8s.io/utils/ptr"
)

func TestNewRecord(t *testing.T) {
	first := metav1.NewTime(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	last := metav1.NewTime(time.Date(2025, 1, 2, 3, 9, 5, 0, time.UTC))

	cases := map[string]struct {
		reason string
		e      *corev1.Event
		want   Record
	}{
		"Full": {
			reason: "Every populated field should be projected.",
			e: &corev1.Event{
				ObjectMeta:     metav1.ObjectMeta{Name: "web-1.abc", Namespace: "prod"},
				Type:           corev1.EventTypeWarning,
				Reason:         "BackOff",
				Message:        "Back-off restarting failed container",
				Count:          ptr.To[int32](7),
				FirstTimestamp: first,
				LastTimestamp:  last,
				InvolvedObject: corev1.ObjectReference{Kind: "Pod", Name: "web-1", Namespace: "prod"},
				Source:         corev1.EventSource{Component: "kubelet", Host: "node-a"},
			},
			want: Record{
				Type:           ptr.To("Warning"),
				Reason:         ptr.To("BackOff"),
				Message:        ptr.To("Back-off restarting failed container"),
				Count:          7,
				FirstTimestamp: ptr.To("2025-01-02T03:04:05Z"),
				LastTimestamp:  ptr.To("2025-01-02T03:09:05Z"),
				InvolvedObject: ObjectRecord{Kind: ptr.To("Pod"), Name: ptr.To("web-1"), Namespace: ptr.To("prod")},
				Source:         SourceRecord{Component: ptr.To("kubelet"), Host: ptr.To("node-a")},
			},
		},
		"EventsV1Style": {
			reason: "Events written through events.k8s.io carry no legacy timestamps or source; those are absent.",
			e: &corev1.Event{
				ObjectMeta:          metav1.ObjectMeta{Name: "web-1.def", Namespace: "prod"},
				Type:                corev1.EventTypeNormal,
				Reason:              "Scheduled",
				ReportingController: "default-scheduler",
				InvolvedObject:      corev1.ObjectReference{Kind: "Pod", Name: "web-1", Namespace: "prod"},
			},
			want: Record{
				Type:           ptr.To("Normal"),
				Reason:         ptr.To("Scheduled"),
				InvolvedObject: ObjectRecord{Kind: ptr.To("Pod"), Name: ptr.To("web-1"), Namespace: ptr.To("prod")},
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := NewRecord(tc.e)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("\n%s\nNewRecord(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestRecordCountJSON(t *testing.T) {
	cases := map[string]struct {
		reason string
		count  int32
		want   string
	}{
		"Unset": {
			reason: "An event without a count serializes count as null.",
			want:   "null",
		},
		"Set": {
			reason: "An event with a count serializes it as a number.",
			count:  4,
			want:   "4",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			b, err := json.Marshal(NewRecord(&corev1.Event{Count: tc.count}))
			if err != nil {
				t.Fatalf("json.Marshal(...): unexpected error: %v", err)
			}
			got := map[string]json.RawMessage{}
			if err := json.Unmarshal(b, &got); err != nil {
				t.Fatalf("json.Unmarshal(...): unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, string(got["count"])); diff != "" {
				t.Errorf("\n%s\ncount: -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestList(t *testing.T) {
	c := fake.NewClientset(
		&corev1.Event{ObjectMeta: metav1.ObjectMeta{Name: "a", Namespace: "prod"}},
		&corev1.Event{ObjectMeta: metav1.ObjectMeta{Name: "b", Namespace: "dev"}},
	)

	all, err := New(c).List(context.Background(), "", "")
	if err != nil {
		t.Fatalf("List(...): unexpected error: %v", err)
	}
	if diff := cmp.Diff(2, len(all)); diff != "" {
		t.Errorf("List(all): -want, +got:\n%s", diff)
	}

	prod, err := New(c).List(context.Background(), "prod", "")
	if err != nil {
		t.Fatalf("List(...): unexpected error: %v", err)
	}
	if diff := cmp.Diff(1, len(prod)); diff != "" {
		t.Errorf("List(prod): -want, +got:\n%s", diff)
	}
}
