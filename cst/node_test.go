package cst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brennalabs/lr1gen/cst"
)

func Test_Node_String(t *testing.T) {
	testCases := []struct {
		name   string
		node   *cst.Node
		expect string
	}{
		{
			name:   "single leaf",
			node:   cst.Leaf("x"),
			expect: "x\n",
		},
		{
			name:   "childless interior prints like a leaf",
			node:   cst.Interior("A"),
			expect: "A\n",
		},
		{
			name: "nested",
			node: cst.Interior("S'",
				cst.Interior("S",
					cst.Leaf("x"),
					cst.Leaf("y"),
				),
			),
			expect: "S'\n  S\n    x\n    y\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(tc.expect, tc.node.String())
		})
	}
}

func Test_Node_Equal(t *testing.T) {
	assert := assert.New(t)

	a := cst.Interior("S", cst.Leaf("x"), cst.Interior("A"))
	b := cst.Interior("S", cst.Leaf("x"), cst.Interior("A"))
	assert.True(a.Equal(b))

	// label mismatch
	assert.False(a.Equal(cst.Interior("T", cst.Leaf("x"), cst.Interior("A"))))

	// child order matters
	assert.False(a.Equal(cst.Interior("S", cst.Interior("A"), cst.Leaf("x"))))

	// childless interior and leaf with the same label compare equal; the
	// tree does not distinguish them beyond their labels
	assert.True(cst.Interior("A").Equal(cst.Leaf("A")))

	// nil handling
	var nilNode *cst.Node
	assert.True(nilNode.Equal(nil))
	assert.False(a.Equal(nil))
}
