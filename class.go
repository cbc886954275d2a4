package cfmt

import (
	"sync"

	"github.com/willf/bitset"
)

// charClasses are the byte sets scan tokens are drawn from.
type charClasses struct {
	space *bitset.BitSet // C isspace
	word  *bitset.BitSet // everything but space
	dec   *bitset.BitSet
	oct   *bitset.BitSet
	hex   *bitset.BitSet
}

var classes = sync.OnceValue(func() *charClasses {
	span := func(b *bitset.BitSet, lo, hi byte) {
		for c := uint(lo); c <= uint(hi); c++ {
			b.Set(c)
		}
	}
	cc := &charClasses{
		space: bitset.New(256),
		dec:   bitset.New(256),
		oct:   bitset.New(256),
		hex:   bitset.New(256),
	}
	for _, c := range []byte(" \t\n\v\f\r") {
		cc.space.Set(uint(c))
	}
	cc.word = cc.space.Complement()
	span(cc.dec, '0', '9')
	span(cc.oct, '0', '7')
	span(cc.hex, '0', '9')
	span(cc.hex, 'a', 'f')
	span(cc.hex, 'A', 'F')
	return cc
})

func isSpace(c byte) bool { return classes().space.Test(uint(c)) }

// run returns how many leading bytes of in belong to class, reading at most
// limit bytes when limit is positive.
func run(in string, class *bitset.BitSet, limit int) int {
	n := 0
	for n < len(in) && (limit <= 0 || n < limit) && class.Test(uint(in[n])) {
		n++
	}
	return n
}
