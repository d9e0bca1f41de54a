package enid

import (
	"math/rand"
	"reflect"

	"github.com/samber/lo"
)

// Generate implements quick.Generator. Any byte pattern is a valid ENID, so
// the array is simply filled with random bytes.
func (ID40) Generate(r *rand.Rand, _ int) reflect.Value {
	var id ID40
	lo.Must(r.Read(id[:]))
	return reflect.ValueOf(id)
}

// Generate implements quick.Generator.
func (ID80) Generate(r *rand.Rand, _ int) reflect.Value {
	var id ID80
	lo.Must(r.Read(id[:]))
	return reflect.ValueOf(id)
}

// Generate implements quick.Generator, flipping a coin for the variant.
func (ID) Generate(r *rand.Rand, size int) reflect.Value {
	var id ID
	if r.Intn(2) == 0 {
		id = From40(ID40{}.Generate(r, size).Interface().(ID40))
	} else {
		id = From80(ID80{}.Generate(r, size).Interface().(ID80))
	}
	return reflect.ValueOf(id)
}
