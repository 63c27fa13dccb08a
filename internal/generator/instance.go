// Where: rfnoc-inst/internal/generator/instance.go
// What: Instance naming for crossbar blocks.
// Why: Repeated blocks need distinct Verilog instance names.
package generator

import "strconv"

// Instance pairs a block with its generated instance name.
type Instance struct {
	Block string
	Name  string
}

// Instances names each block in input order. The first occurrence of a block
// is inst_<block>; later occurrences are suffixed 2, 3, ...
func Instances(blocks []string) []Instance {
	seen := make(map[string]int, len(blocks))
	result := make([]Instance, 0, len(blocks))
	for _, block := range blocks {
		seen[block]++
		name := "inst_" + block
		if n := seen[block]; n > 1 {
			name += strconv.Itoa(n)
		}
		result = append(result, Instance{Block: block, Name: name})
	}
	return result
}

// InstanceNames returns only the instance names of Instances.
func InstanceNames(blocks []string) []string {
	instances := Instances(blocks)
	names := make([]string, len(instances))
	for i, inst := range instances {
		names[i] = inst.Name
	}
	return names
}
