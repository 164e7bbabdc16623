package openapi

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/sarpt/openapi-utils/pkg/jsonref"
)

const (
	// YamlTag is a tag key which is used to parse YAML into internal representation
	YamlTag = "yaml"
	// YamlTagSeparator is a symbol which separates YAML key in tag from flags
	YamlTagSeparator = ","
)

var (
	// ErrIncorrectObjectType occurs when object cannot hold children or cannot be placed where it was requested.
	ErrIncorrectObjectType = errors.New("object has incorrect type")
	// ErrNoValueWithKey occurs when for specified map and key, the value could not be retrieved due to key missing in the map
	ErrNoValueWithKey = errors.New("no map value matches specified key")
	// ErrNoFieldWithTag informs that struct has no field/element (direct descendant) with specified tag
	ErrNoFieldWithTag = errors.New("could not find field with specified tag")
	// ErrFieldWithNameUnusable occurs when the field exists but holds zero value
	ErrFieldWithNameUnusable = errors.New("field with specified name is unusable")
	// ErrIndexOutOfRange occurs when pointer token addresses a list element that does not exist
	ErrIndexOutOfRange = errors.New("list index out of range")
)

// OasObject is an object of the OpenAPI document together with the place holding it:
// a struct field, a map entry or a list element.
// The place is kept so the object can be replaced or removed from its holder.
type OasObject struct {
	value  reflect.Value
	typ    reflect.Type
	assign func(reflect.Value)
}

func rootObject(root *OpenAPI) OasObject {
	value := reflect.ValueOf(root)
	return OasObject{
		value:  value,
		typ:    value.Type(),
		assign: func(reflect.Value) {},
	}
}

func fieldObject(structPtr reflect.Value, idx int) OasObject {
	field := structPtr.Elem().Field(idx)
	return OasObject{
		value: field,
		typ:   field.Type(),
		assign: func(val reflect.Value) {
			field.Set(val)
		},
	}
}

func entryObject(mapVal reflect.Value, key reflect.Value) OasObject {
	return OasObject{
		value: mapVal.MapIndex(key),
		typ:   mapVal.Type().Elem(),
		assign: func(val reflect.Value) {
			if val.IsZero() {
				mapVal.SetMapIndex(key, reflect.Value{})
				return
			}

			mapVal.SetMapIndex(key, val)
		},
	}
}

func elementObject(sliceVal reflect.Value, idx int) OasObject {
	elem := sliceVal.Index(idx)
	return OasObject{
		value: elem,
		typ:   elem.Type(),
		assign: func(val reflect.Value) {
			elem.Set(val)
		},
	}
}

// Instance returns the object, or nil when its holder does not contain it (yet).
func (o OasObject) Instance() interface{} {
	if !o.usable() {
		return nil
	}

	return o.value.Interface()
}

func (o OasObject) usable() bool {
	return o.value.IsValid() && !o.value.IsZero()
}

// Set places val in the holder of the object.
// Setting nil zeroes the field or list element, and removes the entry from a map.
func (o *OasObject) Set(val interface{}) error {
	newVal := reflect.ValueOf(val)
	if !newVal.IsValid() {
		newVal = reflect.Zero(o.typ)
	}

	if !newVal.Type().AssignableTo(o.typ) {
		return fmt.Errorf("%w: cannot place %s where %s is expected", ErrIncorrectObjectType, newVal.Type(), o.typ)
	}

	o.assign(newVal)
	o.value = newVal
	return nil
}

// Unset removes the object from its holder.
func (o *OasObject) Unset() error {
	return o.Set(nil)
}

// Init places an empty, but usable object in the holder: pointers are allocated and maps are made.
func (o *OasObject) Init() error {
	switch o.typ.Kind() {
	case reflect.Ptr:
		return o.Set(reflect.New(o.typ.Elem()).Interface())
	case reflect.Map:
		return o.Set(reflect.MakeMap(o.typ).Interface())
	default:
		return fmt.Errorf("%w: %s cannot be initialized", ErrIncorrectObjectType, o.typ)
	}
}

// child returns the object addressed by a single, already unescaped, pointer token.
// With create, missing struct fields and map entries are initialized on the way.
func (o OasObject) child(token string, create bool) (OasObject, error) {
	var child OasObject
	var missing error

	switch o.value.Kind() {
	case reflect.Ptr:
		if o.value.IsNil() || o.value.Elem().Kind() != reflect.Struct {
			return child, ErrIncorrectObjectType
		}

		idx, ok := fieldIndexByYamlKey(o.value.Elem().Type(), token)
		if !ok {
			return child, ErrNoFieldWithTag
		}

		child, missing = fieldObject(o.value, idx), ErrFieldWithNameUnusable
	case reflect.Map:
		if o.value.IsNil() || o.value.Type().Key().Kind() != reflect.String {
			return child, ErrIncorrectObjectType
		}

		key := reflect.ValueOf(token).Convert(o.value.Type().Key())
		child, missing = entryObject(o.value, key), ErrNoValueWithKey
	case reflect.Slice:
		idx, err := strconv.Atoi(token)
		if err != nil || idx < 0 || idx >= o.value.Len() {
			return child, ErrIndexOutOfRange
		}

		return elementObject(o.value, idx), nil
	default:
		return child, ErrIncorrectObjectType
	}

	if child.usable() {
		return child, nil
	}

	if !create {
		return child, missing
	}

	return child, child.Init()
}

// children lists direct descendants of the object which can contain references.
// Map entries are ordered by key so the references are always collected in the same order.
func (o OasObject) children() []OasObject {
	var children []OasObject

	switch o.value.Kind() {
	case reflect.Ptr:
		if o.value.IsNil() || o.value.Elem().Kind() != reflect.Struct {
			return nil
		}

		for i := 0; i < o.value.Elem().NumField(); i++ {
			child := fieldObject(o.value, i)
			if child.container() {
				children = append(children, child)
			}
		}
	case reflect.Map:
		keys := o.value.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return keys[i].String() < keys[j].String()
		})

		for _, key := range keys {
			child := entryObject(o.value, key)
			if child.container() {
				children = append(children, child)
			}
		}
	case reflect.Slice:
		for i := 0; i < o.value.Len(); i++ {
			child := elementObject(o.value, i)
			if child.container() {
				children = append(children, child)
			}
		}
	}

	return children
}

func (o OasObject) container() bool {
	if !o.usable() {
		return false
	}

	switch o.value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		return true
	default:
		return false
	}
}

// holder returns the object as refHolder, when it is an object that can be replaced by "$ref"
func (o OasObject) holder() (refHolder, bool) {
	if !o.usable() || o.value.Kind() != reflect.Ptr {
		return nil, false
	}

	holder, ok := o.value.Interface().(refHolder)
	return holder, ok
}

// references collects references of the object and its descendants.
// Object with "$ref" set is a reference as a whole, its other fields are not visited.
func (o OasObject) references() []reference {
	if holder, ok := o.holder(); ok && holder.reference() != "" {
		return []reference{{
			object: o,
			ref:    jsonref.Split(holder.reference()),
		}}
	}

	var refs []reference
	for _, child := range o.children() {
		refs = append(refs, child.references()...)
	}

	return refs
}

func fieldIndexByYamlKey(structType reflect.Type, key string) (int, bool) {
	for i := 0; i < structType.NumField(); i++ {
		yamlKey := strings.Split(structType.Field(i).Tag.Get(YamlTag), YamlTagSeparator)[0]
		if yamlKey != "" && yamlKey == key {
			return i, true
		}
	}

	return 0, false
}
