// SPDX-License-Identifier: Unlicense OR MIT

// Command lumenstate validates render state documents and prints their
// normalized form together with the WebGPU pipeline state they
// translate to.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gputypes"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/lumengfx/lumen/render"
	"github.com/lumengfx/lumen/webgpu"
)

var (
	quiet = flag.Bool("q", false, "only report invalid documents")
	jobs  = flag.Int("j", 4, "number of documents to process in parallel")
)

const mainUsage = `The lumenstate command validates render state documents.

Usage:

	lumenstate [flags] <file.yaml>...

A document sets any of blending, depth_test, depth_write and
face_culling; unset fields keep their defaults. For every valid
document the normalized state and its WebGPU translation are printed.

Flags:

	-q	only report invalid documents.
	-j	number of documents to process in parallel (default 4).
`

// report is the output for one document.
type report struct {
	File   string       `yaml:"file"`
	State  render.State `yaml:"state"`
	WebGPU pipelineDoc  `yaml:"webgpu"`
}

type pipelineDoc struct {
	Blend        *blendDoc `yaml:"blend,omitempty"`
	DepthCompare string    `yaml:"depth_compare,omitempty"`
	DepthWrite   bool      `yaml:"depth_write"`
	CullMode     string    `yaml:"cull_mode"`
	FrontFace    string    `yaml:"front_face"`
}

type blendDoc struct {
	Color string `yaml:"color"`
	Alpha string `yaml:"alpha"`
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := mainErr(os.Stdout, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "lumenstate: %v\n", err)
		os.Exit(1)
	}
}

func mainErr(w io.Writer, files []string) error {
	reports := make([]report, len(files))
	errs := make([]error, len(files))
	var g errgroup.Group
	g.SetLimit(max(*jobs, 1))
	for i, name := range files {
		g.Go(func() error {
			data, err := os.ReadFile(name)
			if err == nil {
				reports[i], err = newReport(name, data)
			}
			errs[i] = err
			return err
		})
	}
	if g.Wait() != nil {
		// Report the first failure in argument order.
		for _, err := range errs {
			if err != nil {
				return err
			}
		}
	}
	if *quiet {
		return nil
	}
	return writeReports(w, reports)
}

func newReport(name string, data []byte) (report, error) {
	s, err := render.ParseState(data)
	if err != nil {
		return report{}, fmt.Errorf("%s: %w", name, err)
	}
	prim, err := webgpu.Primitive(s, gputypes.PrimitiveTopologyTriangleList)
	if err != nil {
		return report{}, fmt.Errorf("%s: %w", name, err)
	}
	doc := pipelineDoc{
		CullMode:  prim.CullMode.String(),
		FrontFace: prim.FrontFace.String(),
	}
	if ct := webgpu.ColorTarget(s, gputypes.TextureFormatRGBA8Unorm); ct.Blend != nil {
		doc.Blend = &blendDoc{
			Color: componentString(ct.Blend.Color),
			Alpha: componentString(ct.Blend.Alpha),
		}
	}
	if ds := webgpu.DepthStencil(s, gputypes.TextureFormatDepth24Plus); ds != nil {
		doc.DepthCompare = ds.DepthCompare.String()
		doc.DepthWrite = ds.DepthWriteEnabled
	}
	return report{File: name, State: s, WebGPU: doc}, nil
}

func componentString(c gputypes.BlendComponent) string {
	return fmt.Sprintf("%v(%v, %v)", c.Operation, c.SrcFactor, c.DstFactor)
}

func writeReports(w io.Writer, reports []report) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	for _, r := range reports {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
