// Package kube is the cluster data provider for the browser. It answers the
// listing and detail queries the navigation core issues, using a typed
// clientset for built-in kinds and the dynamic client for CRD-backed kinds.
package kube

import (
	"context"
	"fmt"
	"sort"

	corev1 "k8s.io/api/core/v1"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	apiextensionsclient "k8s.io/apiextensions-apiserver/pkg/client/clientset/clientset"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
	"sigs.k8s.io/yaml"
)

const defaultLogTailLines = int64(100)

// Options configures cluster access.
type Options struct {
	// Kubeconfig overrides the default kubeconfig location when non-empty.
	Kubeconfig string
	// Context selects a kubeconfig context; empty uses the current one.
	Context string
}

// Client talks to a single cluster. Methods are safe for concurrent use; the
// navigation core issues independent column fetches in parallel and relies on
// its generation check, not on serialization here.
type Client struct {
	core        kubernetes.Interface
	ext         apiextensionsclient.Interface
	dyn         dynamic.Interface
	contextName string
	logTail     int64
}

// New builds a Client from the local kubeconfig. It does not contact the
// cluster; call Ping to verify connectivity.
func New(o Options) (*Client, error) {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if o.Kubeconfig != "" {
		rules.ExplicitPath = o.Kubeconfig
	}
	overrides := &clientcmd.ConfigOverrides{CurrentContext: o.Context}
	loader := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, overrides)

	raw, err := loader.RawConfig()
	if err != nil {
		return nil, fmt.Errorf("load kubeconfig: %w", err)
	}
	contextName := o.Context
	if contextName == "" {
		contextName = raw.CurrentContext
	}

	cfg, err := loader.ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("build client config: %w", err)
	}
	core, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}
	ext, err := apiextensionsclient.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("create apiextensions client: %w", err)
	}
	dyn, err := dynamic.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamic client: %w", err)
	}

	return &Client{
		core:        core,
		ext:         ext,
		dyn:         dyn,
		contextName: contextName,
		logTail:     defaultLogTailLines,
	}, nil
}

// CurrentContext returns the kubeconfig context the client was built against.
func (c *Client) CurrentContext() string {
	return c.contextName
}

// Ping verifies cluster connectivity with a minimal namespace list. A failure
// here is the only fatal error in the program.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.core.CoreV1().Namespaces().List(ctx, metav1.ListOptions{Limit: 1}); err != nil {
		return fmt.Errorf("connect to cluster: %w", err)
	}
	return nil
}

// ListNamespaces returns all namespace names, sorted.
func (c *Client) ListNamespaces(ctx context.Context) ([]string, error) {
	lst, err := c.core.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list namespaces: %w", err)
	}
	names := make([]string, 0, len(lst.Items))
	for i := range lst.Items {
		names = append(names, lst.Items[i].Name)
	}
	sort.Strings(names)
	return names, nil
}

// ListObjectKinds returns the browsable kinds: the built-in set in fixed
// display order, followed by the cluster's CRD kinds sorted by name. A CRD
// listing failure degrades to the built-in set rather than failing the column.
func (c *Client) ListObjectKinds(ctx context.Context, _ string) ([]string, error) {
	kinds := make([]string, 0, len(builtinKindOrder)+8)
	kinds = append(kinds, builtinKindOrder...)

	crds, err := c.ext.ApiextensionsV1().CustomResourceDefinitions().List(ctx, metav1.ListOptions{})
	if err != nil {
		return kinds, nil
	}
	custom := make([]string, 0, len(crds.Items))
	for i := range crds.Items {
		if kind := crds.Items[i].Spec.Names.Kind; kind != "" {
			custom = append(custom, kind)
		}
	}
	sort.Strings(custom)
	return append(kinds, custom...), nil
}

// ListObjects returns the names of all objects of the given kind, sorted.
// Cluster-scoped kinds ignore the namespace.
func (c *Client) ListObjects(ctx context.Context, namespace, kind string) ([]string, error) {
	if entry, ok := builtinKinds[kind]; ok {
		obj, err := entry.list(ctx, c.core, namespace)
		if err != nil {
			return nil, fmt.Errorf("list %s in %s: %w", kind, namespace, err)
		}
		return sortedNames(obj)
	}
	return c.listCustomObjects(ctx, namespace, kind)
}

// GetObjectDetail returns the YAML rendering of one object.
func (c *Client) GetObjectDetail(ctx context.Context, namespace, kind, name string) (string, error) {
	if entry, ok := builtinKinds[kind]; ok {
		obj, err := entry.get(ctx, c.core, namespace, name)
		if err != nil {
			return "", fmt.Errorf("get %s/%s in %s: %w", kind, name, namespace, err)
		}
		return renderYAML(obj)
	}
	return c.getCustomObjectDetail(ctx, namespace, kind, name)
}

// GetLogs returns the tail of a pod's logs.
func (c *Client) GetLogs(ctx context.Context, namespace, name string) (string, error) {
	tail := c.logTail
	req := c.core.CoreV1().Pods(namespace).GetLogs(name, &corev1.PodLogOptions{TailLines: &tail})
	raw, err := req.Do(ctx).Raw()
	if err != nil {
		return "", fmt.Errorf("logs for pod %s in %s: %w", name, namespace, err)
	}
	return string(raw), nil
}

func (c *Client) listCustomObjects(ctx context.Context, namespace, kind string) ([]string, error) {
	gvr, namespaced, found, err := c.resourceForKind(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("resolve kind %s: %w", kind, err)
	}
	if !found {
		// Unknown kinds browse as empty, matching the built-in fallbacks.
		return nil, nil
	}
	var lst *unstructured.UnstructuredList
	if namespaced {
		lst, err = c.dyn.Resource(gvr).Namespace(namespace).List(ctx, metav1.ListOptions{})
	} else {
		lst, err = c.dyn.Resource(gvr).List(ctx, metav1.ListOptions{})
	}
	if err != nil {
		return nil, fmt.Errorf("list %s in %s: %w", kind, namespace, err)
	}
	names := make([]string, 0, len(lst.Items))
	for i := range lst.Items {
		names = append(names, lst.Items[i].GetName())
	}
	sort.Strings(names)
	return names, nil
}

func (c *Client) getCustomObjectDetail(ctx context.Context, namespace, kind, name string) (string, error) {
	gvr, namespaced, found, err := c.resourceForKind(ctx, kind)
	if err != nil {
		return "", fmt.Errorf("resolve kind %s: %w", kind, err)
	}
	if !found {
		return "", fmt.Errorf("unsupported object kind: %s", kind)
	}
	ri := c.dyn.Resource(gvr)
	var obj runtime.Object
	if namespaced {
		obj, err = ri.Namespace(namespace).Get(ctx, name, metav1.GetOptions{})
	} else {
		obj, err = ri.Get(ctx, name, metav1.GetOptions{})
	}
	if err != nil {
		return "", fmt.Errorf("get %s/%s in %s: %w", kind, name, namespace, err)
	}
	return renderYAML(obj)
}

// resourceForKind resolves a CRD kind to its group/version/resource, using the
// first served version. The CRD list is re-read on each call: the browser
// keeps no cross-refresh cache by design.
func (c *Client) resourceForKind(ctx context.Context, kind string) (schema.GroupVersionResource, bool, bool, error) {
	crds, err := c.ext.ApiextensionsV1().CustomResourceDefinitions().List(ctx, metav1.ListOptions{})
	if err != nil {
		return schema.GroupVersionResource{}, false, false, err
	}
	for i := range crds.Items {
		crd := &crds.Items[i]
		if crd.Spec.Names.Kind != kind {
			continue
		}
		version := servedVersion(crd)
		if version == "" {
			continue
		}
		gvr := schema.GroupVersionResource{
			Group:    crd.Spec.Group,
			Version:  version,
			Resource: crd.Spec.Names.Plural,
		}
		return gvr, crd.Spec.Scope == apiextensionsv1.NamespaceScoped, true, nil
	}
	return schema.GroupVersionResource{}, false, false, nil
}

func servedVersion(crd *apiextensionsv1.CustomResourceDefinition) string {
	for _, v := range crd.Spec.Versions {
		if v.Served {
			return v.Name
		}
	}
	return ""
}

func sortedNames(obj runtime.Object) ([]string, error) {
	items, err := meta.ExtractList(obj)
	if err != nil {
		return nil, fmt.Errorf("extract list items: %w", err)
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		acc, err := meta.Accessor(item)
		if err != nil {
			return nil, fmt.Errorf("read object metadata: %w", err)
		}
		names = append(names, acc.GetName())
	}
	sort.Strings(names)
	return names, nil
}

func renderYAML(obj runtime.Object) (string, error) {
	data, err := yaml.Marshal(obj)
	if err != nil {
		return "", fmt.Errorf("render object as YAML: %w", err)
	}
	return string(data), nil
}
