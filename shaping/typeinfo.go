package shaping

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// accessor reads one property from a struct value.
type accessor struct {
	name  string // declared JSON name
	index []int
}

func (a accessor) get(v reflect.Value) any {
	f, err := v.FieldByIndexErr(a.index)
	if err != nil {
		// nil embedded pointer
		return nil
	}
	return f.Interface()
}

type typeInfo struct {
	typ    reflect.Type
	fields []accessor
	byName map[string]int // lower-cased name -> position in fields
}

var (
	infos  sync.Map // reflect.Type -> *typeInfo
	builds singleflight.Group
)

// infoFor returns the cached property table of t, building it on first use.
func infoFor(t reflect.Type) (*typeInfo, error) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, ErrUnsupportedType
	}
	if cached, ok := infos.Load(t); ok {
		return cached.(*typeInfo), nil
	}

	// The flight only collapses concurrent first builds; LoadOrStore keeps
	// the cache single-valued. Keys use the descriptor address since
	// function-local types can share a name.
	v, _, _ := builds.Do(fmt.Sprintf("%p", t), func() (any, error) {
		actual, _ := infos.LoadOrStore(t, buildTypeInfo(t))
		return actual, nil
	})
	return v.(*typeInfo), nil
}

func buildTypeInfo(t reflect.Type) *typeInfo {
	info := &typeInfo{typ: t, byName: map[string]int{}}
	collectFields(t, nil, info, map[reflect.Type]bool{t: true})
	return info
}

func collectFields(t reflect.Type, prefix []int, info *typeInfo, visiting map[reflect.Type]bool) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		index := append(append([]int(nil), prefix...), i)

		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")

		if sf.Anonymous && name == "" {
			et := sf.Type
			if et.Kind() == reflect.Pointer {
				et = et.Elem()
			}
			if et.Kind() == reflect.Struct && !visiting[et] {
				visiting[et] = true
				collectFields(et, index, info, visiting)
				delete(visiting, et)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		key := strings.ToLower(name)
		if _, dup := info.byName[key]; dup {
			continue
		}
		info.byName[key] = len(info.fields)
		info.fields = append(info.fields, accessor{name: name, index: index})
	}
}
