// Copyright (c) 2025, the podbox authors.  All rights reserved.
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

package deployer

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/tools/remotecommand"

	apperrors "github.com/clusterops/podbox/pkg/errors"
)

// defaultShell is used when no command is given on attach.
var defaultShell = []string{"/bin/sh"}

// Attach opens an interactive shell in the named pod's container over the
// exec subresource. An empty container selects the pod's first container, an
// empty command runs /bin/sh. Requires a REST config in the deployer config.
func (d *Deployer) Attach(ctx context.Context, podName, container string, command []string) error {
	if d.config.RESTConfig == nil {
		return apperrors.New(apperrors.ErrCodeInvalidRequest,
			"attach requires a cluster REST config")
	}
	if len(command) == 0 {
		command = defaultShell
	}

	req := d.clientset.CoreV1().RESTClient().Post().
		Resource("pods").
		Namespace(d.config.Namespace).
		Name(podName).
		SubResource("exec").
		VersionedParams(&corev1.PodExecOptions{
			Container: container,
			Command:   command,
			Stdin:     true,
			Stdout:    true,
			Stderr:    true,
			TTY:       true,
		}, scheme.ParameterCodec)

	exec, err := remotecommand.NewSPDYExecutor(d.config.RESTConfig, "POST", req.URL())
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeAttach,
			fmt.Sprintf("failed to create executor for pod %s", podName), err)
	}

	in := d.config.In
	if in == nil {
		in = os.Stdin
	}
	out := d.config.Out
	if out == nil {
		out = os.Stdout
	}

	// put the local terminal in raw mode so keystrokes pass straight through
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		state, rawErr := term.MakeRaw(int(f.Fd()))
		if rawErr != nil {
			return apperrors.Wrap(apperrors.ErrCodeAttach,
				"failed to switch terminal to raw mode", rawErr)
		}
		defer func() {
			if restoreErr := term.Restore(int(f.Fd()), state); restoreErr != nil {
				slog.Warn("failed to restore terminal state", "error", restoreErr)
			}
		}()
	}

	slog.Debug("attaching to pod", "pod", podName,
		"namespace", d.config.Namespace, "command", command)

	if err := exec.StreamWithContext(ctx, remotecommand.StreamOptions{
		Stdin:  in,
		Stdout: out,
		Stderr: out,
		Tty:    true,
	}); err != nil {
		attachesTotal.WithLabelValues(statusError).Inc()
		return apperrors.WrapWithContext(apperrors.ErrCodeAttach,
			fmt.Sprintf("session with pod %s ended with error", podName), err,
			map[string]any{"namespace": d.config.Namespace})
	}

	attachesTotal.WithLabelValues(statusSuccess).Inc()
	return nil
}
