package job

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	batchv1 "k8s.io/api/batch/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
	"k8s.io/utils/ptr"
)

func TestNewRecord(t *testing.T) {
	started := metav1.NewTime(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))

	cases := map[string]struct {
		reason string
		j      *batchv1.Job
		want   Record
	}{
		"Running": {
			reason: "A running job has a start time but no completion time.",
			j: &batchv1.Job{
				ObjectMeta: metav1.ObjectMeta{Name: "migrate", Namespace: "prod"},
				Spec: batchv1.JobSpec{
					Completions: ptr.To[int32](1),
					Parallelism: ptr.To[int32](1),
					Selector: &metav1.LabelSelector{
						MatchLabels: map[string]string{"batch.kubernetes.io/controller-uid": "abc"},
					},
				},
				Status: batchv1.JobStatus{Active: 1, StartTime: &started},
			},
			want: Record{
				Name:        "migrate",
				Namespace:   "prod",
				Completions: ptr.To[int32](1),
				Parallelism: ptr.To[int32](1),
				Active:      1,
				StartTime:   ptr.To("2025-01-02T03:04:05Z"),
				Selector:    map[string]string{"batch.kubernetes.io/controller-uid": "abc"},
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := NewRecord(tc.j)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("\n%s\nNewRecord(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestList(t *testing.T) {
	j := New(fake.NewClientset(
		&batchv1.Job{ObjectMeta: metav1.ObjectMeta{Name: "a", Namespace: "prod", Labels: map[string]string{"kind": "migrate"}}},
		&batchv1.Job{ObjectMeta: metav1.ObjectMeta{Name: "b", Namespace: "prod"}},
		&batchv1.Job{ObjectMeta: metav1.ObjectMeta{Name: "c", Namespace: "dev", Labels: map[string]string{"kind": "migrate"}}},
	))

	got, err := j.List(context.Background(), "", "kind=migrate")
	if err != nil {
		t.Fatalf("List(...): unexpected error: %v", err)
	}
	if diff := cmp.Diff(2, len(got)); diff != "" {
		t.Errorf("List(...): -want, +got:\n%s", diff)
	}
}
