package kube

import (
	"strings"
	"testing"
)

func TestExecCommandsCoverCommonShells(t *testing.T) {
	cmds := ExecCommands("staging", "default", "web-0")
	if len(cmds) != 4 {
		t.Fatalf("expected 4 shell variants, got %d", len(cmds))
	}

	want := []string{"/bin/sh", "/bin/bash", "/bin/ash", "/bin/zsh"}
	for i, cmd := range cmds {
		if cmd.Shell != want[i] {
			t.Fatalf("expected shell %s at %d, got %s", want[i], i, cmd.Shell)
		}
		if cmd.Command != "kubectl exec -it web-0 -n default --context staging -- "+want[i] {
			t.Fatalf("unexpected command %q", cmd.Command)
		}
	}
}

func TestExecCommandsOmitContextWhenUnset(t *testing.T) {
	cmds := ExecCommands("", "kube-system", "coredns-abc")
	for _, cmd := range cmds {
		if strings.Contains(cmd.Command, "--context") {
			t.Fatalf("expected no context flag, got %q", cmd.Command)
		}
	}
	if cmds[0].Command != "kubectl exec -it coredns-abc -n kube-system -- /bin/sh" {
		t.Fatalf("unexpected command %q", cmds[0].Command)
	}
}

func TestBuildExecCommandsOnlyForPods(t *testing.T) {
	c := &Client{contextName: "dev"}
	if got := c.BuildExecCommands("default", "Services", "web"); got != nil {
		t.Fatalf("expected nil for non-pod kinds, got %#v", got)
	}
	if got := c.BuildExecCommands("default", KindPods, "web-0"); len(got) != 4 {
		t.Fatalf("expected 4 commands for pods, got %d", len(got))
	}
}
