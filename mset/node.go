package mset

import "fmt"
import "io"
import "strings"

// node in the multiset tree. One node per distinct key, count
// holds the number of occurrences of key and size the number of
// occurrences under the subtree rooted at this node, including
// count.
type node[K any] struct {
	left  *node[K]
	right *node[K]
	key   K
	count int64
	size  int64
	black bool
}

func (nd *node[K]) isred() bool {
	if nd == nil {
		return false
	}
	return nd.black == false
}

func (nd *node[K]) isblack() bool {
	return !nd.isred()
}

func (nd *node[K]) setred() *node[K] {
	nd.black = false
	return nd
}

func (nd *node[K]) setblack() *node[K] {
	nd.black = true
	return nd
}

func (nd *node[K]) togglelink() *node[K] {
	nd.black = !nd.black
	return nd
}

// treesize return number of occurrences under nd, nil tree is empty.
func treesize[K any](nd *node[K]) int64 {
	if nd == nil {
		return 0
	}
	return nd.size
}

func isred[K any](nd *node[K]) bool {
	return nd.isred()
}

//---- maintanence methods.

func (nd *node[K]) repr() string {
	return fmt.Sprintf("%v {count:%v,size:%v} %v", nd.key, nd.count, nd.size, nd.black)
}

func (nd *node[K]) pprint(prefix string) {
	if nd == nil {
		fmt.Printf("%v\n", nd)
		return
	}
	fmt.Printf("%v%v\n", prefix, nd.repr())
	prefix += "  "
	fmt.Printf("%vleft: ", prefix)
	nd.left.pprint(prefix)
	fmt.Printf("%vright: ", prefix)
	nd.right.pprint(prefix)
}

func (nd *node[K]) dotdump(buffer io.Writer) {
	if nd == nil {
		return
	}

	whatcolor := func(childnd *node[K]) string {
		if childnd.isred() {
			return "red"
		}
		return "black"
	}

	key := fmt.Sprintf("%v", nd.key)
	lines := []string{
		fmt.Sprintf("  \"%s\" [label=\"{%s|%d}\"];\n", key, key, nd.count),
	}
	fmsg := "  \"%s\" -> \"%v\" [color=%v];\n"
	if nd.left != nil {
		line := fmt.Sprintf(fmsg, key, nd.left.key, whatcolor(nd.left))
		lines = append(lines, line)
	}
	if nd.right != nil {
		line := fmt.Sprintf(fmsg, key, nd.right.key, whatcolor(nd.right))
		lines = append(lines, line)
	}
	buffer.Write([]byte(strings.Join(lines, "")))
	nd.left.dotdump(buffer)
	nd.right.dotdump(buffer)
}
