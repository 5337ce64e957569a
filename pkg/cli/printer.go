/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/NVIDIA/myapp/pkg/errors"
)

// Printer is the default Handler: it reports each invocation as a single
// line on Out (stdout when nil).
type Printer struct {
	Out io.Writer
}

// Handle implements Handler.
func (p *Printer) Handle(_ context.Context, inv Invocation) error {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}

	var err error
	switch v := inv.(type) {
	case Server:
		_, err = fmt.Fprintf(out, "server start on %s:%d (verbosity: %d)\n", v.Addr, v.Port, v.Verbose)
	case Remote:
		switch {
		case v.Remove:
			_, err = fmt.Fprintf(out, "remote removed: %s\n", v.Name)
		case v.URL != nil:
			_, err = fmt.Fprintf(out, "remote added: %s -> %s\n", v.Name, *v.URL)
		default:
			_, err = fmt.Fprintf(out, "remote info requested: %s\n", v.Name)
		}
	case ConfigGet:
		_, err = fmt.Fprintf(out, "config get %s (format: %s)\n", v.Key, v.Format)
	case ConfigSet:
		_, err = fmt.Fprintf(out, "config set %s=%s (global: %t)\n", v.Key, v.Value, v.Global)
	default:
		return errors.New(errors.ErrCodeInternal, fmt.Sprintf("unhandled invocation %T", inv))
	}

	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, "failed to write output", err)
	}
	return nil
}
