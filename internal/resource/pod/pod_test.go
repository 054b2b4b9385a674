package pod

import (
	"context"
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	corev1 "k8s.io/api/core/v1"
	kerrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/kubernetes/fake"
	"k8s.io/utils/ptr"

	"github.com/upbound/kube-readonly-mcp-server/internal/cluster"
)

func newPod(ns, name string, labels map[string]string, containers ...string) *corev1.Pod {
	p := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Namespace: ns,
			Name:      name,
			Labels:    labels,
		},
	}
	for _, c := range containers {
		p.Spec.Containers = append(p.Spec.Containers, corev1.Container{Name: c})
	}
	return p
}

func TestGetLogs(t *testing.T) {
	type args struct {
		nn types.NamespacedName
		cs cluster.Client
		o  *corev1.PodLogOptions
	}
	type want struct {
		res []byte
		err error
	}

	cases := map[string]struct {
		reason string
		args   args
		want   want
	}{
		"Success": {
			reason: "If the pod is available, we shouldn't fail to get the logs",
			args: args{
				cs: fake.NewClientset(),
				nn: types.NamespacedName{
					Namespace: "default",
					Name:      "pod-1",
				},
			},
			want: want{
				res: []byte("fake logs"),
			},
		},
		"WithOptions": {
			reason: "Log options should not change how the stream is read.",
			args: args{
				cs: fake.NewClientset(),
				nn: types.NamespacedName{
					Namespace: "default",
					Name:      "pod-1",
				},
				o: &corev1.PodLogOptions{Container: "main", TailLines: ptr.To[int64](10), Timestamps: true},
			},
			want: want{
				res: []byte("fake logs"),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p := New(tc.args.cs)
			got, err := p.GetLogs(context.Background(), tc.args.nn, tc.args.o)

			if diff := cmp.Diff(tc.want.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("\n%s\nGetLogs(...): -want err, +got err:\n%s", tc.reason, diff)
			}

			if diff := cmp.Diff(tc.want.res, got); diff != "" {
				t.Errorf("\n%s\nGetLogs(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestGet(t *testing.T) {
	cs := fake.NewClientset(newPod("default", "pod-1", nil, "main"))
	p := New(cs)

	got, err := p.Get(context.Background(), types.NamespacedName{Namespace: "default", Name: "pod-1"})
	if err != nil {
		t.Fatalf("Get(...): unexpected error: %v", err)
	}
	if diff := cmp.Diff("pod-1", got.GetName()); diff != "" {
		t.Errorf("Get(...): -want, +got:\n%s", diff)
	}

	_, err = p.Get(context.Background(), types.NamespacedName{Namespace: "default", Name: "missing"})
	if !kerrors.IsNotFound(err) {
		t.Errorf("Get(...): expected a wrapped not found error, got %v", err)
	}
}

func TestList(t *testing.T) {
	objs := []runtime.Object{
		newPod("prod", "web-1", map[string]string{"app": "web"}, "main"),
		newPod("prod", "web-2", map[string]string{"app": "web"}, "main"),
		newPod("prod", "db-1", map[string]string{"app": "db"}, "main"),
		newPod("dev", "web-3", map[string]string{"app": "web"}, "main"),
	}

	type args struct {
		namespace string
		selector  string
	}

	cases := map[string]struct {
		reason string
		args   args
		want   []string
	}{
		"Namespaced": {
			reason: "A namespace should scope the list.",
			args:   args{namespace: "prod"},
			want:   []string{"db-1", "web-1", "web-2"},
		},
		"NamespacedSelector": {
			reason: "A selector should filter within the namespace.",
			args:   args{namespace: "prod", selector: "app=web"},
			want:   []string{"web-1", "web-2"},
		},
		"AllNamespacesSelector": {
			reason: "An empty namespace should list across all namespaces.",
			args:   args{selector: "app=web"},
			want:   []string{"web-1", "web-2", "web-3"},
		},
		"NoMatch": {
			reason: "A selector that matches nothing should return an empty list.",
			args:   args{selector: "app=cache"},
			want:   []string{},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p := New(fake.NewClientset(objs...))
			l, err := p.List(context.Background(), tc.args.namespace, tc.args.selector)
			if err != nil {
				t.Fatalf("\n%s\nList(...): unexpected error: %v", tc.reason, err)
			}

			got := make([]string, 0, len(l))
			for _, pd := range l {
				got = append(got, pd.GetName())
			}
			sort.Strings(got)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("\n%s\nList(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestNewRecord(t *testing.T) {
	created := metav1.NewTime(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))

	cases := map[string]struct {
		reason string
		pod    *corev1.Pod
		want   Record
	}{
		"Full": {
			reason: "Every populated field should be projected.",
			pod: &corev1.Pod{
				ObjectMeta: metav1.ObjectMeta{
					Name:              "web-1",
					Namespace:         "prod",
					Labels:            map[string]string{"app": "web"},
					CreationTimestamp: created,
				},
				Spec: corev1.PodSpec{
					NodeName:   "node-a",
					Containers: []corev1.Container{{Name: "sidecar"}, {Name: "main"}},
				},
				Status: corev1.PodStatus{
					Phase: corev1.PodRunning,
					PodIP: "10.0.0.1",
				},
			},
			want: Record{
				Name:              "web-1",
				Namespace:         "prod",
				IP:                ptr.To("10.0.0.1"),
				Status:            ptr.To("Running"),
				Labels:            map[string]string{"app": "web"},
				CreationTimestamp: ptr.To("2025-01-02T03:04:05Z"),
				Node:              ptr.To("node-a"),
				Containers:        []string{"sidecar", "main"},
			},
		},
		"Unscheduled": {
			reason: "Fields the API server has not populated yet should be absent.",
			pod:    newPod("prod", "web-2", nil),
			want: Record{
				Name:       "web-2",
				Namespace:  "prod",
				Containers: []string{},
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := NewRecord(tc.pod)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("\n%s\nNewRecord(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestRecordJSON(t *testing.T) {
	b, err := json.Marshal(NewRecord(newPod("prod", "web-2", nil)))
	if err != nil {
		t.Fatalf("json.Marshal(...): %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("json.Unmarshal(...): %v", err)
	}

	want := map[string]any{
		"name":              "web-2",
		"namespace":         "prod",
		"ip":                nil,
		"status":            nil,
		"labels":            nil,
		"creationTimestamp": nil,
		"node":              nil,
		"containers":        []any{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Record JSON: -want, +got:\n%s", diff)
	}
}
