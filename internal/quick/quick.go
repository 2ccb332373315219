package quick

import (
	"fmt"
	"math/rand"
	"reflect"
	"strings"
)

// Check is inspired by the standard quick.Check package, but generates
// arrays of larger sizes than the maximum of 50 hardcoded in
// testing/quick, including the empty and single-element arrays which
// exercise the degenerate batch representations.
func Check(f interface{}) error {
	v := reflect.ValueOf(f)
	r := rand.New(rand.NewSource(0))

	var makeArray func(int) interface{}
	switch t := v.Type().In(0); t.Elem().Kind() {
	case reflect.Int32:
		makeArray = func(n int) interface{} {
			v := make([]int32, n)
			for i := range v {
				v[i] = r.Int31()
			}
			return v
		}

	case reflect.Int64:
		makeArray = func(n int) interface{} {
			v := make([]int64, n)
			for i := range v {
				v[i] = r.Int63()
			}
			return v
		}

	case reflect.Uint32:
		makeArray = func(n int) interface{} {
			v := make([]uint32, n)
			for i := range v {
				v[i] = r.Uint32()
			}
			return v
		}

	case reflect.Uint64:
		makeArray = func(n int) interface{} {
			v := make([]uint64, n)
			for i := range v {
				v[i] = r.Uint64()
			}
			return v
		}

	case reflect.String:
		makeArray = func(n int) interface{} {
			v := make([]string, n)
			for i := range v {
				s := new(strings.Builder)
				for m := r.Intn(64); m > 0; m-- {
					s.WriteByte(byte(r.Intn(256)))
				}
				v[i] = s.String()
			}
			return v
		}

	default:
		panic("cannot run quick check on function with input of type " + v.Type().In(0).String())
	}

	for _, n := range [...]int{0, 1, 7, 64, 100, 1000} {
		in := makeArray(n)
		ok := v.Call([]reflect.Value{reflect.ValueOf(in)})
		if !ok[0].Bool() {
			return fmt.Errorf("test failed on input of size %d", n)
		}
	}
	return nil
}
