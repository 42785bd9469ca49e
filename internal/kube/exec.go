package kube

import "fmt"

// ExecCommand is a ready-to-paste shell invocation for opening an interactive
// session inside a pod. The browser never runs these itself; it offers them
// for clipboard copy.
type ExecCommand struct {
	Shell       string
	Description string
	Command     string
}

var execShells = []struct {
	path string
	desc string
}{
	{"/bin/sh", "most common"},
	{"/bin/bash", "full Linux images"},
	{"/bin/ash", "Alpine Linux"},
	{"/bin/zsh", "some images"},
}

// ExecCommands returns kubectl exec invocations for the usual container
// shells. The context flag is omitted when kubeContext is empty so the
// command works against the caller's current context.
func ExecCommands(kubeContext, namespace, name string) []ExecCommand {
	cmds := make([]ExecCommand, 0, len(execShells))
	for _, sh := range execShells {
		cmd := fmt.Sprintf("kubectl exec -it %s -n %s", name, namespace)
		if kubeContext != "" {
			cmd += " --context " + kubeContext
		}
		cmd += " -- " + sh.path
		cmds = append(cmds, ExecCommand{Shell: sh.path, Description: sh.desc, Command: cmd})
	}
	return cmds
}

// BuildExecCommands returns exec commands for the object, or nil when the
// kind does not support interactive sessions.
func (c *Client) BuildExecCommands(namespace, kind, name string) []ExecCommand {
	if kind != KindPods {
		return nil
	}
	return ExecCommands(c.contextName, namespace, name)
}
