package cmd

import (
	"context"

	"github.com/ardnew/scad/cli/cmd/view"
	"github.com/ardnew/scad/log"
)

// View opens the interactive previewer.
type View struct {
	Model string `arg:"" help:"Model file to preview." name:"model" type:"existingfile"`
}

// Run executes the view command.
func (v *View) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	cacheDir, ok := ktx.Model.Vars()[CacheIdentifier]
	if !ok {
		panic("internal error: cache directory undefined")
	}

	return view.Run(ctx, v.Model, cacheDir, log.Default())
}
