package namespace

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
	"k8s.io/utils/ptr"
)

func TestListRecords(t *testing.T) {
	c := fake.NewClientset(
		&corev1.Namespace{
			ObjectMeta: metav1.ObjectMeta{Name: "prod"},
			Status:     corev1.NamespaceStatus{Phase: corev1.NamespaceActive},
		},
		&corev1.Namespace{
			ObjectMeta: metav1.ObjectMeta{Name: "old"},
			Status:     corev1.NamespaceStatus{Phase: corev1.NamespaceTerminating},
		},
		&corev1.Namespace{
			ObjectMeta: metav1.ObjectMeta{Name: "new"},
		},
	)

	l, err := New(c).List(context.Background())
	if err != nil {
		t.Fatalf("List(...): unexpected error: %v", err)
	}

	want := []Record{
		{Name: "prod", Status: ptr.To("Active")},
		{Name: "old", Status: ptr.To("Terminating")},
		{Name: "new"},
	}
	sortByName := cmpopts.SortSlices(func(a, b Record) bool { return a.Name < b.Name })
	if diff := cmp.Diff(want, NewRecords(l), sortByName); diff != "" {
		t.Errorf("NewRecords(List(...)): -want, +got:\n%s", diff)
	}
}
