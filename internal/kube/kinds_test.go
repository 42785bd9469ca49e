package kube

import "testing"

func TestBuiltinKindOrderMatchesRegistry(t *testing.T) {
	if len(builtinKindOrder) != len(builtinKinds) {
		t.Fatalf("order lists %d kinds, registry has %d", len(builtinKindOrder), len(builtinKinds))
	}
	seen := make(map[string]struct{}, len(builtinKindOrder))
	for _, kind := range builtinKindOrder {
		entry, ok := builtinKinds[kind]
		if !ok {
			t.Fatalf("kind %s in display order but not in registry", kind)
		}
		if entry.list == nil || entry.get == nil {
			t.Fatalf("kind %s missing list or get", kind)
		}
		if _, dup := seen[kind]; dup {
			t.Fatalf("kind %s listed twice", kind)
		}
		seen[kind] = struct{}{}
	}
}

func TestClusterScopedKinds(t *testing.T) {
	clusterScoped := map[string]bool{
		"PersistentVolumes":   true,
		"ClusterRoles":        true,
		"ClusterRoleBindings": true,
	}
	for kind, entry := range builtinKinds {
		if entry.namespaced == clusterScoped[kind] {
			t.Fatalf("kind %s has wrong scope", kind)
		}
	}
}
