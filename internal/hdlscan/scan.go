// Where: rfnoc-inst/internal/hdlscan/scan.go
// What: Participle lexer and grammar that count block instantiations.
// Why: Let check and tests inspect generated Verilog without a full HDL parser.
package hdlscan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// BlockPrefix is the module name prefix of crossbar blocks.
const BlockPrefix = "noc_block_"

const numCEParam = "NUM_CE"

// File is the root of a scanned source.
type File struct {
	Items []*Item `parser:"@@*"`
}

// Item is one recognized construct or a skipped token.
type Item struct {
	Param    *Localparam `parser:"  @@"`
	Instance *Instance   `parser:"| @@"`
	Other    string      `parser:"| @(Ident | Number | Punct)"`
}

// Localparam is an integer localparam declaration.
type Localparam struct {
	Name  string `parser:"'localparam' @Ident '='"`
	Value int    `parser:"@Number ';'"`
}

// Instance is a module instantiation with named port connections.
type Instance struct {
	Pos    lexer.Position
	Module string  `parser:"@Ident"`
	Name   string  `parser:"@Ident '('"`
	Ports  []*Port `parser:"( @@ ( ',' @@ )* )? ')' ';'"`
}

// Port is a named connection `.name(expr)`.
type Port struct {
	Name string   `parser:"'.' @Ident '('"`
	Expr []string `parser:"@( Ident | Number | '[' | ']' | '*' | '+' | '-' | ':' )* ')'"`
}

// Instantiation is a crossbar block found in the file.
type Instantiation struct {
	Block string
	Name  string
	// Slot is the crossbar index from the debug port; "n" inside the fill loop.
	Slot string
	Line int
}

// Report summarizes a scanned file.
type Report struct {
	// NumCE is the declared slot count, zero when absent.
	NumCE     int
	Instances []Instantiation
}

var (
	hdlLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//[^\n]*|/\*([^*]|\*+[^*/])*\*+/`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_$]*`},
		{Name: "Number", Pattern: `[0-9]+`},
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Punct", Pattern: `[^\sa-zA-Z0-9_]`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(hdlLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(8),
	)
)

// Scan parses src and reports its crossbar block instantiations in source order.
func Scan(src string) (Report, error) {
	file, err := fileParser.ParseString("", src)
	if err != nil {
		return Report{}, fmt.Errorf("scan instantiations: %w", err)
	}

	var report Report
	for _, item := range file.Items {
		switch {
		case item.Param != nil && item.Param.Name == numCEParam:
			report.NumCE = item.Param.Value
		case item.Instance != nil && strings.HasPrefix(item.Instance.Module, BlockPrefix):
			inst := item.Instance
			report.Instances = append(report.Instances, Instantiation{
				Block: strings.TrimPrefix(inst.Module, BlockPrefix),
				Name:  inst.Name,
				Slot:  inst.slot(),
				Line:  inst.Pos.Line,
			})
		}
	}
	return report, nil
}

// Blocks returns the block names in source order.
func (r Report) Blocks() []string {
	blocks := make([]string, len(r.Instances))
	for i, inst := range r.Instances {
		blocks[i] = inst.Block
	}
	return blocks
}

// Named returns the instantiations bound to a fixed slot, skipping generate loops.
func (r Report) Named() []Instantiation {
	var named []Instantiation
	for _, inst := range r.Instances {
		if !inst.InLoop() {
			named = append(named, inst)
		}
	}
	return named
}

// DuplicateNames returns instance names used more than once.
func (r Report) DuplicateNames() []string {
	counts := map[string]int{}
	var dups []string
	for _, inst := range r.Instances {
		counts[inst.Name]++
		if counts[inst.Name] == 2 {
			dups = append(dups, inst.Name)
		}
	}
	return dups
}

// InLoop reports whether the instantiation sits in a generate loop.
func (i Instantiation) InLoop() bool {
	_, err := strconv.Atoi(i.Slot)
	return err != nil
}

func (i *Instance) slot() string {
	for _, port := range i.Ports {
		if port.Name != "debug" {
			continue
		}
		// ce_debug [ <slot> ]
		if len(port.Expr) == 4 && port.Expr[1] == "[" && port.Expr[3] == "]" {
			return port.Expr[2]
		}
		return strings.Join(port.Expr, "")
	}
	return ""
}
