// Where: rfnoc-inst/internal/generator/renderer.go
// What: Render the computation engine instantiation file.
// Why: Keep the generated Verilog layout in one embedded template.
package generator

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru/rfnoc-inst/internal/meta"
)

const (
	instTemplateName = "ce_auto_inst.v.tmpl"

	// LoopbackBlock is the block used to fill unused crossbar slots.
	LoopbackBlock = "axi_fifo_loopback"

	// DefaultMaxBlocks matches the crossbar size of the x300 family.
	DefaultMaxBlocks = 10
)

// Options controls crossbar sizing.
type Options struct {
	MaxBlocks     int
	FillWithFIFOs bool
}

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// Render validates blocks and returns the instantiation file text.
// NUM_CE is the slot maximum when filling with FIFOs, otherwise the block count.
func Render(blocks []string, opts Options) (string, error) {
	if err := Validate(blocks, opts.MaxBlocks); err != nil {
		return "", err
	}

	numCE := len(blocks)
	if opts.FillWithFIFOs {
		numCE = opts.MaxBlocks
	}

	data := instTemplateData{
		Generator:     meta.AppName,
		NumCE:         numCE,
		FillWithFIFOs: opts.FillWithFIFOs,
		FIFOStart:     len(blocks),
		Loopback:      LoopbackBlock,
	}
	for i, inst := range Instances(blocks) {
		data.Blocks = append(data.Blocks, blockTemplateContext{
			Name:     inst.Block,
			Instance: inst.Name,
			Slot:     i,
		})
	}

	return renderTemplate(instTemplateName, data)
}

// Validate reports whether blocks fit a crossbar of maxBlocks slots.
func Validate(blocks []string, maxBlocks int) error {
	if len(blocks) == 0 {
		return ErrNoBlocks
	}
	if len(blocks) > maxBlocks {
		return fmt.Errorf("%w: trying to connect %d blocks, max is %d", ErrTooManyBlocks, len(blocks), maxBlocks)
	}
	return nil
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}

type instTemplateData struct {
	Generator     string
	NumCE         int
	Blocks        []blockTemplateContext
	FillWithFIFOs bool
	FIFOStart     int
	Loopback      string
}

type blockTemplateContext struct {
	Name     string
	Instance string
	Slot     int
}
