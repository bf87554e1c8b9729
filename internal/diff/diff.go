/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

/*
Package diff compares two resolved server schemas field-by-field and
reports what changed, added or disappeared between them - the
comparison a `gqltool diff` run needs between a schema checked into a
repository and the schema a live API currently serves.
*/
package diff

import (
	"sort"

	"github.com/google/uuid"
	"github.com/kylelemons/godebug/pretty"

	"github.com/krotik/gqltool/internal/schema"
)

/*
EntryKind classifies one reported change.
*/
type EntryKind int

const (
	Added EntryKind = iota
	Removed
	Changed
)

var entryKindNames = map[EntryKind]string{
	Added:   "added",
	Removed: "removed",
	Changed: "changed",
}

func (k EntryKind) String() string {
	if s, ok := entryKindNames[k]; ok {
		return s
	}
	return "unknown"
}

/*
Entry is one difference between two schemas. Path is a dotted
breadcrumb such as "Objects.User.Fields.name". For Added only After is
set, for Removed only Before is set (the missing side is nil), and for
Changed both are set.
*/
type Entry struct {
	Path   string
	Kind   EntryKind
	Before any
	After  any
}

/*
Report is the output of one Diff call, tagged with a RunID so CLI log
lines from the same invocation can be correlated.
*/
type Report struct {
	RunID   uuid.UUID
	Entries []Entry
}

/*
Empty reports whether the two schemas compared equal.
*/
func (r Report) Empty() bool { return len(r.Entries) == 0 }

/*
Pretty renders one entry's Before/After values using godebug/pretty
for readable nested-struct output; a nil side renders as "".
*/
func (e Entry) Pretty() (before, after string) {
	cfg := pretty.DefaultConfig
	if e.Before != nil {
		before = cfg.Sprint(e.Before)
	}
	if e.After != nil {
		after = cfg.Sprint(e.After)
	}
	return before, after
}

/*
Diff compares two resolved server schemas and reports structural
differences (spec.md §4.5). Comparison is by name: a type present in b
but not a has kind Added, present in a but not b has kind Removed,
present in both with a differing shape has kind Changed. It covers
scalars (description only), enum values, union members, object and
interface fields, input fields (presence and nullability only) and the
root operation types. Directive definitions are not compared, and field
arguments are compared by name and order only, not by type.
*/
func Diff(a, b *schema.ServerSchema) Report {
	r := Report{RunID: uuid.New()}

	diffScalars(a, b, &r)
	diffEnums(a, b, &r)
	diffUnions(a, b, &r)
	diffInterfaces(a, b, &r)
	diffObjects(a, b, &r)
	diffInputs(a, b, &r)
	diffRootOperations(a, b, &r)

	sort.Slice(r.Entries, func(i, j int) bool { return r.Entries[i].Path < r.Entries[j].Path })
	return r
}

func diffScalars(a, b *schema.ServerSchema, r *Report) {
	for name, av := range a.Scalars {
		bv, ok := b.Scalars[name]
		path := "Scalars." + name
		if !ok {
			r.Entries = append(r.Entries, Entry{Path: path, Kind: Removed, Before: av})
			continue
		}
		if av.Description != bv.Description {
			r.Entries = append(r.Entries, Entry{Path: path + ".Description", Kind: Changed, Before: av.Description, After: bv.Description})
		}
	}
	for name, bv := range b.Scalars {
		if _, ok := a.Scalars[name]; !ok {
			r.Entries = append(r.Entries, Entry{Path: "Scalars." + name, Kind: Added, After: bv})
		}
	}
}

func diffEnums(a, b *schema.ServerSchema, r *Report) {
	for name, av := range a.Enums {
		bv, ok := b.Enums[name]
		path := "Enums." + name
		if !ok {
			r.Entries = append(r.Entries, Entry{Path: path, Kind: Removed, Before: av})
			continue
		}
		aVals, bVals := enumValueSet(av), enumValueSet(bv)
		for v := range aVals {
			if !bVals[v] {
				r.Entries = append(r.Entries, Entry{Path: path + ".Values." + v, Kind: Removed, Before: v})
			}
		}
		for v := range bVals {
			if !aVals[v] {
				r.Entries = append(r.Entries, Entry{Path: path + ".Values." + v, Kind: Added, After: v})
			}
		}
	}
	for name, bv := range b.Enums {
		if _, ok := a.Enums[name]; !ok {
			r.Entries = append(r.Entries, Entry{Path: "Enums." + name, Kind: Added, After: bv})
		}
	}
}

func enumValueSet(e *schema.EnumType) map[string]bool {
	out := make(map[string]bool, len(e.Values))
	for _, v := range e.Values {
		out[v.Name] = true
	}
	return out
}

func diffUnions(a, b *schema.ServerSchema, r *Report) {
	for name, av := range a.Unions {
		bv, ok := b.Unions[name]
		path := "Unions." + name
		if !ok {
			r.Entries = append(r.Entries, Entry{Path: path, Kind: Removed, Before: av})
			continue
		}
		aMembers, bMembers := memberSet(av.Members), memberSet(bv.Members)
		for m := range aMembers {
			if !bMembers[m] {
				r.Entries = append(r.Entries, Entry{Path: path + ".Members." + m, Kind: Removed, Before: m})
			}
		}
		for m := range bMembers {
			if !aMembers[m] {
				r.Entries = append(r.Entries, Entry{Path: path + ".Members." + m, Kind: Added, After: m})
			}
		}
	}
	for name, bv := range b.Unions {
		if _, ok := a.Unions[name]; !ok {
			r.Entries = append(r.Entries, Entry{Path: "Unions." + name, Kind: Added, After: bv})
		}
	}
}

func memberSet(members []*schema.ObjectType) map[string]bool {
	out := make(map[string]bool, len(members))
	for _, m := range members {
		out[m.Name] = true
	}
	return out
}

func diffInterfaces(a, b *schema.ServerSchema, r *Report) {
	for name, av := range a.Interfaces {
		bv, ok := b.Interfaces[name]
		path := "Interfaces." + name
		if !ok {
			r.Entries = append(r.Entries, Entry{Path: path, Kind: Removed, Before: av})
			continue
		}
		diffFieldMap(path, av.Fields, av.FieldOrder, bv.Fields, bv.FieldOrder, r)
	}
	for name, bv := range b.Interfaces {
		if _, ok := a.Interfaces[name]; !ok {
			r.Entries = append(r.Entries, Entry{Path: "Interfaces." + name, Kind: Added, After: bv})
		}
	}
}

func diffObjects(a, b *schema.ServerSchema, r *Report) {
	for name, av := range a.Objects {
		bv, ok := b.Objects[name]
		path := "Objects." + name
		if !ok {
			r.Entries = append(r.Entries, Entry{Path: path, Kind: Removed, Before: av})
			continue
		}
		diffFieldMap(path, av.Fields, av.FieldOrder, bv.Fields, bv.FieldOrder, r)
	}
	for name, bv := range b.Objects {
		if _, ok := a.Objects[name]; !ok {
			r.Entries = append(r.Entries, Entry{Path: "Objects." + name, Kind: Added, After: bv})
		}
	}
}

func diffFieldMap(
	path string,
	aFields map[string]*schema.ObjectField, aOrder []string,
	bFields map[string]*schema.ObjectField, bOrder []string,
	r *Report,
) {
	for _, name := range aOrder {
		af := aFields[name]
		bf, ok := bFields[name]
		fpath := path + ".Fields." + name
		if !ok {
			r.Entries = append(r.Entries, Entry{Path: fpath, Kind: Removed, Before: af})
			continue
		}
		if !fieldSpecEqual(af.Spec, bf.Spec) {
			r.Entries = append(r.Entries, Entry{Path: fpath, Kind: Changed, Before: af.Spec, After: bf.Spec})
		}
	}
	for _, name := range bOrder {
		if _, ok := aFields[name]; !ok {
			r.Entries = append(r.Entries, Entry{Path: path + ".Fields." + name, Kind: Added, After: bFields[name]})
		}
	}
}

/*
fieldSpecEqual compares two field specs by shape and named type, not by
pointer identity (each side was resolved against its own registry).
Arguments of callable fields are compared by name and order only.
*/
func fieldSpecEqual(a, b schema.ObjectFieldSpec) bool {
	ac, aCallable := a.(schema.ObjectCallableSpec)
	bc, bCallable := b.(schema.ObjectCallableSpec)
	if aCallable != bCallable {
		return false
	}
	if aCallable {
		return nonCallableEqual(ac.Return, bc.Return) && sameArgNames(ac.ArgOrder, bc.ArgOrder)
	}
	return nonCallableEqual(a.(schema.NonCallableObjectFieldSpec), b.(schema.NonCallableObjectFieldSpec))
}

func sameArgNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func nonCallableEqual(a, b schema.NonCallableObjectFieldSpec) bool {
	if a.Nullable() != b.Nullable() {
		return false
	}
	aArr, aIsArr := a.(schema.ObjectArraySpec)
	bArr, bIsArr := b.(schema.ObjectArraySpec)
	if aIsArr != bIsArr {
		return false
	}
	if aIsArr {
		return nonCallableEqual(aArr.Inner, bArr.Inner)
	}
	return a.(schema.ObjectLiteralSpec).Type.TypeName() == b.(schema.ObjectLiteralSpec).Type.TypeName()
}

func diffInputs(a, b *schema.ServerSchema, r *Report) {
	for name, av := range a.Inputs {
		bv, ok := b.Inputs[name]
		path := "Inputs." + name
		if !ok {
			r.Entries = append(r.Entries, Entry{Path: path, Kind: Removed, Before: av})
			continue
		}
		for _, fname := range av.FieldOrder {
			bf, ok := bv.Fields[fname]
			fpath := path + ".Fields." + fname
			if !ok {
				r.Entries = append(r.Entries, Entry{Path: fpath, Kind: Removed, Before: av.Fields[fname]})
				continue
			}
			if av.Fields[fname].Spec.Nullable() != bf.Spec.Nullable() {
				r.Entries = append(r.Entries, Entry{Path: fpath, Kind: Changed, Before: av.Fields[fname], After: bf})
			}
		}
		for _, fname := range bv.FieldOrder {
			if _, ok := av.Fields[fname]; !ok {
				r.Entries = append(r.Entries, Entry{Path: path + ".Fields." + fname, Kind: Added, After: bv.Fields[fname]})
			}
		}
	}
	for name, bv := range b.Inputs {
		if _, ok := a.Inputs[name]; !ok {
			r.Entries = append(r.Entries, Entry{Path: "Inputs." + name, Kind: Added, After: bv})
		}
	}
}

func diffRootOperations(a, b *schema.ServerSchema, r *Report) {
	check := func(path string, av, bv *schema.ObjectType) {
		aName, bName := "", ""
		if av != nil {
			aName = av.Name
		}
		if bv != nil {
			bName = bv.Name
		}
		if aName != bName {
			r.Entries = append(r.Entries, Entry{Path: path, Kind: Changed, Before: aName, After: bName})
		}
	}
	check("Query", a.Query, b.Query)
	check("Mutation", a.Mutation, b.Mutation)
	check("Subscription", a.Subscription, b.Subscription)
}
