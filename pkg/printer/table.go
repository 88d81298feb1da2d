// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package printer

import (
	"fmt"
	"io"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/tsuru/tablecli"
)

// Tabler is implemented by values that know how to lay themselves out.
type Tabler interface {
	Table() *tablecli.Table
}

// PrintTable prints data in a human readable way:
//   - a Tabler is printed as its own table;
//   - simple values are printed as-is, one per line for slices;
//   - maps of simple values are printed as "key: value" pairs;
//   - slices of structs become a table with one row per item;
//   - a struct is printed as "Field: value" lines.
//
// Struct fields may carry a "name" tag to rename the column and a
// "priority" tag, higher priorities are printed first.
func PrintTable(out io.Writer, data any) error {
	if data == nil {
		return nil
	}
	if t, ok := data.(Tabler); ok {
		_, err := io.WriteString(out, t.Table().String())
		return err
	}

	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}

	switch {
	case isSimple(value.Kind()):
		_, err := fmt.Fprintln(out, value.Interface())
		return err
	case value.Kind() == reflect.Slice || value.Kind() == reflect.Array:
		return printSlice(out, value)
	case value.Kind() == reflect.Map && isSimple(value.Type().Key().Kind()) && isSimple(value.Type().Elem().Kind()):
		_, err := fmt.Fprintln(out, formatMap(value))
		return err
	case value.Kind() == reflect.Struct:
		return printStruct(out, value)
	}
	return fmt.Errorf("cannot print type %T (kind: %s)", data, value.Kind())
}

func printSlice(out io.Writer, value reflect.Value) error {
	elem := value.Type().Elem()
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		for i := 0; i < value.Len(); i++ {
			if _, err := fmt.Fprintln(out, value.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	}
	if value.Len() == 0 {
		return nil
	}

	fields := sortedStructFields(elem)
	tbl := tablecli.NewTable()
	headers := make(tablecli.Row, len(fields))
	for i, f := range fields {
		headers[i] = normalizeName(f.printName)
	}
	tbl.Headers = headers
	for i := 0; i < value.Len(); i++ {
		item := reflect.Indirect(value.Index(i))
		row := make(tablecli.Row, len(fields))
		for j, f := range fields {
			row[j] = formatValue(item.FieldByName(f.fieldName))
		}
		tbl.AddRow(row)
	}
	_, err := io.WriteString(out, tbl.String())
	return err
}

func printStruct(out io.Writer, value reflect.Value) error {
	w := tabwriter.NewWriter(out, 2, 2, 2, ' ', 0)
	for _, f := range sortedStructFields(value.Type()) {
		field := value.FieldByName(f.fieldName)
		if field.IsZero() {
			continue
		}
		fmt.Fprintf(w, "%s:\t%s\n", normalizeName(f.printName), formatValue(field))
	}
	return w.Flush()
}

func formatValue(value reflect.Value) string {
	value = reflect.Indirect(value)
	switch {
	case !value.IsValid():
		return ""
	case value.Kind() == reflect.Map:
		return formatMap(value)
	case value.Kind() == reflect.Slice || value.Kind() == reflect.Array:
		items := make([]string, value.Len())
		for i := range items {
			items[i] = fmt.Sprint(value.Index(i).Interface())
		}
		return strings.Join(items, ", ")
	}
	return fmt.Sprint(value.Interface())
}

func formatMap(value reflect.Value) string {
	keys := value.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface()) })
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%v: %v", k.Interface(), value.MapIndex(k).Interface())
	}
	return strings.Join(pairs, ", ")
}

func isSimple(kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	}
	return false
}

type structField struct {
	fieldName string
	printName string
	priority  int
}

// sortedStructFields returns the exported fields of structType by
// descending priority, then by name.
func sortedStructFields(structType reflect.Type) []structField {
	if structType.Kind() != reflect.Struct {
		return nil
	}
	fields := []structField{}
	for _, field := range reflect.VisibleFields(structType) {
		if !field.IsExported() || field.Anonymous {
			continue
		}
		priority, _ := strconv.Atoi(field.Tag.Get("priority"))
		printName := field.Name
		if tag := field.Tag.Get("name"); tag != "" {
			printName = tag
		}
		fields = append(fields, structField{fieldName: field.Name, printName: printName, priority: priority})
	}
	sort.SliceStable(fields, func(i, j int) bool {
		if fields[i].priority == fields[j].priority {
			return fields[i].printName < fields[j].printName
		}
		return fields[i].priority > fields[j].priority
	})
	return fields
}

var matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
var matchAllCap = regexp.MustCompile("([a-z0-9])([A-Z])")

// normalizeName turns CamelCase into "Camel Case".
func normalizeName(s string) string {
	ret := matchFirstCap.ReplaceAllString(s, "${1} ${2}")
	return matchAllCap.ReplaceAllString(ret, "${1} ${2}")
}
