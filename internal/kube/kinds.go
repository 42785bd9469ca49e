package kube

import (
	"context"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes"
)

// KindPods is the display name of the pod kind. Logs and exec are only
// meaningful for pods, so the UI gates those modes on this name.
const KindPods = "Pods"

type listFunc func(ctx context.Context, cs kubernetes.Interface, namespace string) (runtime.Object, error)

type getFunc func(ctx context.Context, cs kubernetes.Interface, namespace, name string) (runtime.Object, error)

// kindEntry describes how a built-in kind is listed and read. Cluster-scoped
// kinds ignore the namespace argument.
type kindEntry struct {
	namespaced bool
	list       listFunc
	get        getFunc
}

var opts = metav1.ListOptions{}

// builtinKindOrder is the display order of the kind column before CRD kinds
// are appended.
var builtinKindOrder = []string{
	"Pods",
	"Services",
	"Deployments",
	"ReplicaSets",
	"StatefulSets",
	"DaemonSets",
	"Jobs",
	"CronJobs",
	"ConfigMaps",
	"Secrets",
	"PersistentVolumes",
	"PersistentVolumeClaims",
	"Ingresses",
	"ServiceAccounts",
	"Roles",
	"RoleBindings",
	"ClusterRoles",
	"ClusterRoleBindings",
}

var builtinKinds = map[string]kindEntry{
	"Pods": {
		namespaced: true,
		list: func(ctx context.Context, cs kubernetes.Interface, ns string) (runtime.Object, error) {
			return cs.CoreV1().Pods(ns).List(ctx, opts)
		},
		get: func(ctx context.Context, cs kubernetes.Interface, ns, name string) (runtime.Object, error) {
			return cs.CoreV1().Pods(ns).Get(ctx, name, metav1.GetOptions{})
		},
	},
	"Services": {
		namespaced: true,
		list: func(ctx context.Context, cs kubernetes.Interface, ns string) (runtime.Object, error) {
			return cs.CoreV1().Services(ns).List(ctx, opts)
		},
		get: func(ctx context.Context, cs kubernetes.Interface, ns, name string) (runtime.Object, error) {
			return cs.CoreV1().Services(ns).Get(ctx, name, metav1.GetOptions{})
		},
	},
	"Deployments": {
		namespaced: true,
		list: func(ctx context.Context, cs kubernetes.Interface, ns string) (runtime.Object, error) {
			return cs.AppsV1().Deployments(ns).List(ctx, opts)
		},
		get: func(ctx context.Context, cs kubernetes.Interface, ns, name string) (runtime.Object, error) {
			return cs.AppsV1().Deployments(ns).Get(ctx, name, metav1.GetOptions{})
		},
	},
	"ReplicaSets": {
		namespaced: true,
		list: func(ctx context.Context, cs kubernetes.Interface, ns string) (runtime.Object, error) {
			return cs.AppsV1().ReplicaSets(ns).List(ctx, opts)
		},
		get: func(ctx context.Context, cs kubernetes.Interface, ns, name string) (runtime.Object, error) {
			return cs.AppsV1().ReplicaSets(ns).Get(ctx, name, metav1.GetOptions{})
		},
	},
	"StatefulSets": {
		namespaced: true,
		list: func(ctx context.Context, cs kubernetes.Interface, ns string) (runtime.Object, error) {
			return cs.AppsV1().StatefulSets(ns).List(ctx, opts)
		},
		get: func(ctx context.Context, cs kubernetes.Interface, ns, name string) (runtime.Object, error) {
			return cs.AppsV1().StatefulSets(ns).Get(ctx, name, metav1.GetOptions{})
		},
	},
	"DaemonSets": {
		namespaced: true,
		list: func(ctx context.Context, cs kubernetes.Interface, ns string) (runtime.Object, error) {
			return cs.AppsV1().DaemonSets(ns).List(ctx, opts)
		},
		get: func(ctx context.Context, cs kubernetes.Interface, ns, name string) (runtime.Object, error) {
			return cs.AppsV1().DaemonSets(ns).Get(ctx, name, metav1.GetOptions{})
		},
	},
	"Jobs": {
		namespaced: true,
		list: func(ctx context.Context, cs kubernetes.Interface, ns string) (runtime.Object, error) {
			return cs.BatchV1().Jobs(ns).List(ctx, opts)
		},
		get: func(ctx context.Context, cs kubernetes.Interface, ns, name string) (runtime.Object, error) {
			return cs.BatchV1().Jobs(ns).Get(ctx, name, metav1.GetOptions{})
		},
	},
	"CronJobs": {
		namespaced: true,
		list: func(ctx context.Context, cs kubernetes.Interface, ns string) (runtime.Object, error) {
			return cs.BatchV1().CronJobs(ns).List(ctx, opts)
		},
		get: func(ctx context.Context, cs kubernetes.Interface, ns, name string) (runtime.Object, error) {
			return cs.BatchV1().CronJobs(ns).Get(ctx, name, metav1.GetOptions{})
		},
	},
	"ConfigMaps": {
		namespaced: true,
		list: func(ctx context.Context, cs kubernetes.Interface, ns string) (runtime.Object, error) {
			return cs.CoreV1().ConfigMaps(ns).List(ctx, opts)
		},
		get: func(ctx context.Context, cs kubernetes.Interface, ns, name string) (runtime.Object, error) {
			return cs.CoreV1().ConfigMaps(ns).Get(ctx, name, metav1.GetOptions{})
		},
	},
	"Secrets": {
		namespaced: true,
		list: func(ctx context.Context, cs kubernetes.Interface, ns string) (runtime.Object, error) {
			return cs.CoreV1().Secrets(ns).List(ctx, opts)
		},
		get: func(ctx context.Context, cs kubernetes.Interface, ns, name string) (runtime.Object, error) {
			return cs.CoreV1().Secrets(ns).Get(ctx, name, metav1.GetOptions{})
		},
	},
	"PersistentVolumes": {
		list: func(ctx context.Context, cs kubernetes.Interface, _ string) (runtime.Object, error) {
			return cs.CoreV1().PersistentVolumes().List(ctx, opts)
		},
		get: func(ctx context.Context, cs kubernetes.Interface, _, name string) (runtime.Object, error) {
			return cs.CoreV1().PersistentVolumes().Get(ctx, name, metav1.GetOptions{})
		},
	},
	"PersistentVolumeClaims": {
		namespaced: true,
		list: func(ctx context.Context, cs kubernetes.Interface, ns string) (runtime.Object, error) {
			return cs.CoreV1().PersistentVolumeClaims(ns).List(ctx, opts)
		},
		get: func(ctx context.Context, cs kubernetes.Interface, ns, name string) (runtime.Object, error) {
			return cs.CoreV1().PersistentVolumeClaims(ns).Get(ctx, name, metav1.GetOptions{})
		},
	},
	"Ingresses": {
		namespaced: true,
		list: func(ctx context.Context, cs kubernetes.Interface, ns string) (runtime.Object, error) {
			return cs.NetworkingV1().Ingresses(ns).List(ctx, opts)
		},
		get: func(ctx context.Context, cs kubernetes.Interface, ns, name string) (runtime.Object, error) {
			return cs.NetworkingV1().Ingresses(ns).Get(ctx, name, metav1.GetOptions{})
		},
	},
	"ServiceAccounts": {
		namespaced: true,
		list: func(ctx context.Context, cs kubernetes.Interface, ns string) (runtime.Object, error) {
			return cs.CoreV1().ServiceAccounts(ns).List(ctx, opts)
		},
		get: func(ctx context.Context, cs kubernetes.Interface, ns, name string) (runtime.Object, error) {
			return cs.CoreV1().ServiceAccounts(ns).Get(ctx, name, metav1.GetOptions{})
		},
	},
	"Roles": {
		namespaced: true,
		list: func(ctx context.Context, cs kubernetes.Interface, ns string) (runtime.Object, error) {
			return cs.RbacV1().Roles(ns).List(ctx, opts)
		},
		get: func(ctx context.Context, cs kubernetes.Interface, ns, name string) (runtime.Object, error) {
			return cs.RbacV1().Roles(ns).Get(ctx, name, metav1.GetOptions{})
		},
	},
	"RoleBindings": {
		namespaced: true,
		list: func(ctx context.Context, cs kubernetes.Interface, ns string) (runtime.Object, error) {
			return cs.RbacV1().RoleBindings(ns).List(ctx, opts)
		},
		get: func(ctx context.Context, cs kubernetes.Interface, ns, name string) (runtime.Object, error) {
			return cs.RbacV1().RoleBindings(ns).Get(ctx, name, metav1.GetOptions{})
		},
	},
	"ClusterRoles": {
		list: func(ctx context.Context, cs kubernetes.Interface, _ string) (runtime.Object, error) {
			return cs.RbacV1().ClusterRoles().List(ctx, opts)
		},
		get: func(ctx context.Context, cs kubernetes.Interface, _, name string) (runtime.Object, error) {
			return cs.RbacV1().ClusterRoles().Get(ctx, name, metav1.GetOptions{})
		},
	},
	"ClusterRoleBindings": {
		list: func(ctx context.Context, cs kubernetes.Interface, _ string) (runtime.Object, error) {
			return cs.RbacV1().ClusterRoleBindings().List(ctx, opts)
		},
		get: func(ctx context.Context, cs kubernetes.Interface, _, name string) (runtime.Object, error) {
			return cs.RbacV1().ClusterRoleBindings().Get(ctx, name, metav1.GetOptions{})
		},
	},
}
