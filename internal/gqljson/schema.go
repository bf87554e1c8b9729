/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package gqljson

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/krotik/gqltool/internal/schema"
)

/*
EncodeServerSchema renders a resolved ServerSchema as the `{server: {...}}`
wire form of spec.md §6, used to persist a schema snapshot to disk for a
later `internal diff --path-to-schema` run. References to other named
types are emitted as `{_type, name}` stubs rather than inlining the
referenced entity, so the document stays a tree even though the runtime
graph is cyclic (object <-> interface back-references, self-referential
input types). The one exception is an object's `implements` list, which
holds plain interface names rather than stubs.
*/
func EncodeServerSchema(s *schema.ServerSchema) ([]byte, error) {
	scalars := map[string]any{}
	for name, v := range s.Scalars {
		scalars[name] = map[string]any{"_type": "SCALAR", "name": name, "description": v.Description, "builtin": v.Builtin}
	}
	enums := map[string]any{}
	for name, v := range s.Enums {
		values := make([]any, len(v.Values))
		for i, ev := range v.Values {
			values[i] = map[string]any{"name": ev.Name, "description": ev.Description}
		}
		enums[name] = map[string]any{"_type": "ENUM", "name": name, "description": v.Description, "values": values}
	}
	unions := map[string]any{}
	for name, v := range s.Unions {
		members := make([]any, len(v.Members))
		for i, m := range v.Members {
			members[i] = refStub(m)
		}
		unions[name] = map[string]any{"_type": "UNION", "name": name, "description": v.Description, "members": members}
	}
	interfaces := map[string]any{}
	for name, v := range s.Interfaces {
		interfaces[name] = map[string]any{
			"_type": "INTERFACE", "name": name, "description": v.Description,
			"fields": encodeFieldSpecs(v.Fields, v.FieldOrder),
		}
	}
	objects := map[string]any{}
	for name, v := range s.Objects {
		implements := make([]any, len(v.Implements))
		for i, iface := range v.Implements {
			implements[i] = iface.Name
		}
		objects[name] = map[string]any{
			"_type": "OBJECT", "name": name, "description": v.Description, "implements": implements,
			"fields": encodeFieldSpecs(v.Fields, v.FieldOrder),
		}
	}
	inputs := map[string]any{}
	for name, v := range s.Inputs {
		fields := map[string]any{}
		for _, fname := range v.FieldOrder {
			fields[fname] = encodeInputSpec(v.Fields[fname].Spec)
		}
		inputs[name] = map[string]any{"_type": "INPUT_OBJECT", "name": name, "description": v.Description, "fields": fields}
	}
	directives := map[string]any{}
	for name, v := range s.Directives {
		args := map[string]any{}
		for _, aname := range v.ArgOrder {
			args[aname] = encodeInputSpec(v.Arguments[aname].Spec)
		}
		directives[name] = map[string]any{
			"_type": "DIRECTIVE", "name": name, "arguments": args,
			"locations": v.Locations, "repeatable": v.Repeatable,
		}
	}

	root := map[string]any{
		"server": map[string]any{
			"scalars": scalars, "enums": enums, "unions": unions, "interfaces": interfaces,
			"objects": objects, "inputs": inputs, "directives": directives,
			"query": refStubOrNil(s.Query), "mutation": refStubOrNil(s.Mutation), "subscription": refStubOrNil(s.Subscription),
		},
	}
	return json.MarshalIndent(root, "", "  ")
}

func refStub(t schema.ObjectTypeSpec) map[string]any {
	return map[string]any{"_type": kindTag(t), "name": t.TypeName()}
}

func refStubOrNil(o *schema.ObjectType) any {
	if o == nil {
		return nil
	}
	return map[string]any{"_type": "OBJECT", "name": o.Name}
}

func kindTag(t schema.ObjectTypeSpec) string {
	switch t.(type) {
	case *schema.ScalarType:
		return "SCALAR"
	case *schema.EnumType:
		return "ENUM"
	case *schema.ObjectType:
		return "OBJECT"
	case *schema.InterfaceType:
		return "INTERFACE"
	case *schema.UnionType:
		return "UNION"
	}
	return "UNKNOWN"
}

func encodeNonCallable(spec schema.NonCallableObjectFieldSpec) map[string]any {
	if arr, ok := spec.(schema.ObjectArraySpec); ok {
		return map[string]any{"_type": "ArraySpec", "nullable": arr.Nullable(), "inner": encodeNonCallable(arr.Inner)}
	}
	lit := spec.(schema.ObjectLiteralSpec)
	return map[string]any{"_type": "LiteralSpec", "nullable": lit.Nullable(), "ref": refStub(lit.Type)}
}

func encodeFieldSpecs(fields map[string]*schema.ObjectField, order []string) map[string]any {
	out := map[string]any{}
	for _, name := range order {
		f := fields[name]
		if callable, ok := f.Spec.(schema.ObjectCallableSpec); ok {
			args := map[string]any{}
			for _, aname := range callable.ArgOrder {
				args[aname] = encodeInputSpec(callable.Arguments[aname].Spec)
			}
			out[name] = map[string]any{
				"_type": "CallableSpec", "description": f.Description,
				"return": encodeNonCallable(callable.Return), "arguments": args,
			}
			continue
		}
		out[name] = map[string]any{
			"_type": "Field", "description": f.Description,
			"type": encodeNonCallable(f.Spec.(schema.NonCallableObjectFieldSpec)),
		}
	}
	return out
}

func encodeInputSpec(spec schema.InputFieldSpec) map[string]any {
	if arr, ok := spec.(schema.InputArraySpec); ok {
		return map[string]any{"_type": "ArraySpec", "nullable": arr.Nullable(), "inner": encodeInputSpec(arr.Inner)}
	}
	lit := spec.(schema.InputLiteralSpec)
	kind := "UNKNOWN"
	switch lit.Type.(type) {
	case *schema.ScalarType:
		kind = "SCALAR"
	case *schema.EnumType:
		kind = "ENUM"
	case *schema.InputType:
		kind = "INPUT_OBJECT"
	}
	return map[string]any{"_type": "LiteralSpec", "nullable": lit.Nullable(), "ref": map[string]any{"_type": kind, "name": lit.Type.TypeName()}}
}

/*
schemaBuilder accumulates the per-kind name->handle dictionaries needed
to resolve `{_type, name}` stubs while decoding (spec.md §6 "the
resolver re-hydrates these to concrete handles").
*/
type schemaBuilder struct {
	scalars    map[string]*schema.ScalarType
	enums      map[string]*schema.EnumType
	unions     map[string]*schema.UnionType
	interfaces map[string]*schema.InterfaceType
	objects    map[string]*schema.ObjectType
	inputs     map[string]*schema.InputType
	directives map[string]*schema.DirectiveType
}

func (b *schemaBuilder) objectTypeSpec(name string) schema.ObjectTypeSpec {
	if v, ok := b.scalars[name]; ok {
		return v
	}
	if v, ok := b.enums[name]; ok {
		return v
	}
	if v, ok := b.objects[name]; ok {
		return v
	}
	if v, ok := b.interfaces[name]; ok {
		return v
	}
	if v, ok := b.unions[name]; ok {
		return v
	}
	return nil
}

func (b *schemaBuilder) inputTypeSpec(name string) schema.InputTypeSpec {
	if v, ok := b.scalars[name]; ok {
		return v
	}
	if v, ok := b.enums[name]; ok {
		return v
	}
	if v, ok := b.inputs[name]; ok {
		return v
	}
	return nil
}

/*
DecodeServerSchema parses the §6 schema JSON wire form back into a
ServerSchema. The reference-stub walk (`{_type, name}` objects nested at
arbitrary depth under a field/argument's `type`/`inner`/`ref` chain) is
done with gjson path queries directly against the raw document rather
than by declaring a Go struct per nesting level, since the nesting depth
tracks the declared type's list-wrapping depth, which is unbounded.
*/
func DecodeServerSchema(data []byte) (*schema.ServerSchema, error) {
	root := gjson.ParseBytes(data)
	srv := root.Get("server")
	b := &schemaBuilder{
		scalars: map[string]*schema.ScalarType{}, enums: map[string]*schema.EnumType{},
		unions: map[string]*schema.UnionType{}, interfaces: map[string]*schema.InterfaceType{},
		objects: map[string]*schema.ObjectType{}, inputs: map[string]*schema.InputType{},
		directives: map[string]*schema.DirectiveType{},
	}

	srv.Get("scalars").ForEach(func(key, value gjson.Result) bool {
		b.scalars[key.String()] = &schema.ScalarType{
			Name: key.String(), Description: value.Get("description").String(), Builtin: value.Get("builtin").Bool(),
		}
		return true
	})
	srv.Get("enums").ForEach(func(key, value gjson.Result) bool {
		e := &schema.EnumType{Name: key.String(), Description: value.Get("description").String()}
		for _, v := range value.Get("values").Array() {
			e.Values = append(e.Values, schema.EnumValue{Name: v.Get("name").String(), Description: v.Get("description").String()})
		}
		b.enums[key.String()] = e
		return true
	})
	srv.Get("interfaces").ForEach(func(key, value gjson.Result) bool {
		b.interfaces[key.String()] = &schema.InterfaceType{Name: key.String(), Description: value.Get("description").String()}
		return true
	})
	srv.Get("objects").ForEach(func(key, value gjson.Result) bool {
		b.objects[key.String()] = &schema.ObjectType{Name: key.String(), Description: value.Get("description").String()}
		return true
	})
	srv.Get("inputs").ForEach(func(key, value gjson.Result) bool {
		b.inputs[key.String()] = &schema.InputType{Name: key.String(), Description: value.Get("description").String()}
		return true
	})
	srv.Get("directives").ForEach(func(key, value gjson.Result) bool {
		b.directives[key.String()] = &schema.DirectiveType{Name: key.String(), Repeatable: value.Get("repeatable").Bool()}
		return true
	})

	srv.Get("unions").ForEach(func(key, value gjson.Result) bool {
		u := b.unions[key.String()]
		if u == nil {
			u = &schema.UnionType{Name: key.String()}
			b.unions[key.String()] = u
		}
		u.Description = value.Get("description").String()
		for _, m := range value.Get("members").Array() {
			if obj, ok := b.objects[m.Get("name").String()]; ok {
				u.Members = append(u.Members, obj)
			}
		}
		return true
	})

	var decodeNC func(v gjson.Result) schema.NonCallableObjectFieldSpec
	decodeNC = func(v gjson.Result) schema.NonCallableObjectFieldSpec {
		nullable := v.Get("nullable").Bool()
		if v.Get("_type").String() == "ArraySpec" {
			return schema.NewObjectArraySpec(decodeNC(v.Get("inner")), nullable)
		}
		name := v.Get("ref.name").String()
		return schema.NewObjectLiteralSpec(b.objectTypeSpec(name), nullable)
	}

	var decodeInput func(v gjson.Result) schema.InputFieldSpec
	decodeInput = func(v gjson.Result) schema.InputFieldSpec {
		nullable := v.Get("nullable").Bool()
		if v.Get("_type").String() == "ArraySpec" {
			return schema.NewInputArraySpec(decodeInput(v.Get("inner")), nullable)
		}
		name := v.Get("ref.name").String()
		return schema.NewInputLiteralSpec(b.inputTypeSpec(name), nullable)
	}

	decodeFields := func(fieldsResult gjson.Result) (map[string]*schema.ObjectField, []string) {
		fields := map[string]*schema.ObjectField{}
		var order []string
		fieldsResult.ForEach(func(key, value gjson.Result) bool {
			order = append(order, key.String())
			if value.Get("_type").String() == "CallableSpec" {
				args := map[string]schema.InputFieldDefinition{}
				var argOrder []string
				value.Get("arguments").ForEach(func(ak, av gjson.Result) bool {
					argOrder = append(argOrder, ak.String())
					args[ak.String()] = schema.InputFieldDefinition{Name: ak.String(), Spec: decodeInput(av)}
					return true
				})
				fields[key.String()] = &schema.ObjectField{
					Name: key.String(), Description: value.Get("description").String(),
					Spec: schema.ObjectCallableSpec{Return: decodeNC(value.Get("return")), Arguments: args, ArgOrder: argOrder},
				}
				return true
			}
			fields[key.String()] = &schema.ObjectField{
				Name: key.String(), Description: value.Get("description").String(), Spec: decodeNC(value.Get("type")),
			}
			return true
		})
		return fields, order
	}

	srv.Get("interfaces").ForEach(func(key, value gjson.Result) bool {
		fields, order := decodeFields(value.Get("fields"))
		iface := b.interfaces[key.String()]
		iface.Fields, iface.FieldOrder = fields, order
		return true
	})
	srv.Get("objects").ForEach(func(key, value gjson.Result) bool {
		fields, order := decodeFields(value.Get("fields"))
		obj := b.objects[key.String()]
		obj.Fields, obj.FieldOrder = fields, order
		for _, name := range value.Get("implements").Array() {
			if iface, ok := b.interfaces[name.String()]; ok {
				obj.Implements = append(obj.Implements, iface)
				iface.Implementers = append(iface.Implementers, obj)
			}
		}
		return true
	})
	srv.Get("inputs").ForEach(func(key, value gjson.Result) bool {
		input := b.inputs[key.String()]
		fields := map[string]schema.InputFieldDefinition{}
		var order []string
		value.Get("fields").ForEach(func(fk, fv gjson.Result) bool {
			order = append(order, fk.String())
			fields[fk.String()] = schema.InputFieldDefinition{Name: fk.String(), Spec: decodeInput(fv)}
			return true
		})
		input.Fields, input.FieldOrder = fields, order
		return true
	})
	srv.Get("directives").ForEach(func(key, value gjson.Result) bool {
		dir := b.directives[key.String()]
		args := map[string]schema.InputFieldDefinition{}
		var order []string
		value.Get("arguments").ForEach(func(ak, av gjson.Result) bool {
			order = append(order, ak.String())
			args[ak.String()] = schema.InputFieldDefinition{Name: ak.String(), Spec: decodeInput(av)}
			return true
		})
		dir.Arguments, dir.ArgOrder = args, order
		for _, l := range value.Get("locations").Array() {
			dir.Locations = append(dir.Locations, l.String())
		}
		return true
	})

	out := &schema.ServerSchema{
		Scalars: b.scalars, Enums: b.enums, Unions: b.unions, Interfaces: b.interfaces,
		Objects: b.objects, Inputs: b.inputs, Directives: b.directives,
	}
	if name := srv.Get("query.name").String(); name != "" {
		out.Query = b.objects[name]
	}
	if name := srv.Get("mutation.name").String(); name != "" {
		out.Mutation = b.objects[name]
	}
	if name := srv.Get("subscription.name").String(); name != "" {
		out.Subscription = b.objects[name]
	}
	return out, nil
}
