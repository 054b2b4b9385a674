// /*
// Copyright 2025 The Upbound Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
// */

// Package cluster provides the read-only handle to the Kubernetes API groups
// queried by the tool server.
package cluster

import (
	"time"

	"k8s.io/client-go/kubernetes"
	typedappsv1 "k8s.io/client-go/kubernetes/typed/apps/v1"
	typedbatchv1 "k8s.io/client-go/kubernetes/typed/batch/v1"
	typedcorev1 "k8s.io/client-go/kubernetes/typed/core/v1"
	typednetworkingv1 "k8s.io/client-go/kubernetes/typed/networking/v1"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client/config"

	"github.com/crossplane/crossplane-runtime/pkg/errors"
)

const (
	errLoadKubeconfig = "failed to load kubeconfig"
	errLoadConfig     = "failed to resolve cluster config"
	errNewClientset   = "failed to construct clientset"
	errNilConfig      = "rest config cannot be nil"
)

// Client is the set of API groups the gateway reads from. Every group shares
// the same rest.Config. A *kubernetes.Clientset satisfies Client, as does the
// fake clientset from k8s.io/client-go/kubernetes/fake.
type Client interface {
	CoreV1() typedcorev1.CoreV1Interface
	AppsV1() typedappsv1.AppsV1Interface
	BatchV1() typedbatchv1.BatchV1Interface
	NetworkingV1() typednetworkingv1.NetworkingV1Interface
}

var _ Client = &kubernetes.Clientset{}

// NewForConfig constructs a live Client from the supplied config.
func NewForConfig(cfg *rest.Config) (Client, error) {
	if cfg == nil {
		return nil, errors.New(errNilConfig)
	}
	cs, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errNewClientset)
	}
	return cs, nil
}

type configOptions struct {
	kubeconfig string
	context    string
	timeout    time.Duration
	qps        float32
	burst      int
}

// A ConfigOption modifies how GetConfig resolves a rest.Config.
type ConfigOption func(*configOptions)

// WithKubeconfig reads credentials from the kubeconfig at path instead of the
// default lookup chain.
func WithKubeconfig(path string) ConfigOption {
	return func(o *configOptions) {
		o.kubeconfig = path
	}
}

// WithContext selects a kubeconfig context other than the current one.
func WithContext(name string) ConfigOption {
	return func(o *configOptions) {
		o.context = name
	}
}

// WithTimeout bounds every request made with the resulting config.
func WithTimeout(d time.Duration) ConfigOption {
	return func(o *configOptions) {
		o.timeout = d
	}
}

// WithRateLimits sets the client side QPS and burst.
func WithRateLimits(qps float32, burst int) ConfigOption {
	return func(o *configOptions) {
		o.qps = qps
		o.burst = burst
	}
}

// GetConfig resolves the rest.Config used to build a Client. An explicit
// kubeconfig wins; otherwise the controller-runtime lookup order applies
// (KUBECONFIG, in-cluster service account, ~/.kube/config).
func GetConfig(opts ...ConfigOption) (*rest.Config, error) {
	o := &configOptions{}
	for _, fn := range opts {
		fn(o)
	}

	var (
		cfg *rest.Config
		err error
	)
	switch {
	case o.kubeconfig != "":
		loader := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
			&clientcmd.ClientConfigLoadingRules{ExplicitPath: o.kubeconfig},
			&clientcmd.ConfigOverrides{CurrentContext: o.context},
		)
		cfg, err = loader.ClientConfig()
		if err != nil {
			return nil, errors.Wrap(err, errLoadKubeconfig)
		}
	case o.context != "":
		cfg, err = config.GetConfigWithContext(o.context)
		if err != nil {
			return nil, errors.Wrap(err, errLoadConfig)
		}
	default:
		cfg, err = ctrl.GetConfig()
		if err != nil {
			return nil, errors.Wrap(err, errLoadConfig)
		}
	}

	if o.timeout > 0 {
		cfg.Timeout = o.timeout
	}
	if o.qps > 0 {
		cfg.QPS = o.qps
	}
	if o.burst > 0 {
		cfg.Burst = o.burst
	}
	return cfg, nil
}
