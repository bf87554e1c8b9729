/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package schema

/*
checkInterfaceConformance verifies that every object implementing an
interface declares every interface field, at a covariant return type,
accepts every interface argument at an identical type, and is at least
as restrictive on nullability as the interface declares (spec.md §3.6
"InterfaceNotSatisfied").
*/
func checkInterfaceConformance(server *ServerSchema) error {
	for _, obj := range server.Objects {
		for _, iface := range obj.Implements {
			for _, fieldName := range iface.FieldOrder {
				ifaceField := iface.Fields[fieldName]
				objField, ok := obj.Fields[fieldName]
				if !ok {
					return &Error{Kind: InterfaceNotSatisfied, Location: iface.Fields[fieldName].Loc.StartToken.Loc,
						Message: "object \"" + obj.Name + "\" is missing field \"" + fieldName +
							"\" required by interface \"" + iface.Name + "\""}
				}
				if err := checkFieldConformance(obj.Name, iface.Name, objField, ifaceField); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func checkFieldConformance(objName, ifaceName string, objField, ifaceField *ObjectField) error {
	objReturn, objArgs, objArgOrder := splitFieldSpec(objField.Spec)
	ifaceReturn, ifaceArgs, _ := splitFieldSpec(ifaceField.Spec)

	if !isCovariant(ifaceReturn, objReturn) {
		return &Error{Kind: InterfaceNotSatisfied, Location: objField.Loc.StartToken.Loc,
			Message: "object \"" + objName + "\" field \"" + objField.Name +
				"\" is not a covariant return type of interface \"" + ifaceName + "\""}
	}

	for name, ifaceArg := range ifaceArgs {
		objArg, ok := objArgs[name]
		if !ok {
			return &Error{Kind: InterfaceNotSatisfied, Location: objField.Loc.StartToken.Loc,
				Message: "object \"" + objName + "\" field \"" + objField.Name +
					"\" is missing argument \"" + name + "\" required by interface \"" + ifaceName + "\""}
		}
		if !specIdentical(ifaceArg.Spec, objArg.Spec) {
			return &Error{Kind: InterfaceNotSatisfied, Location: objField.Loc.StartToken.Loc,
				Message: "object \"" + objName + "\" field \"" + objField.Name +
					"\" argument \"" + name + "\" does not match interface \"" + ifaceName + "\""}
		}
	}
	_ = objArgOrder
	return nil
}

/*
splitFieldSpec separates a field's return-type spec from its (possibly
empty) argument list.
*/
func splitFieldSpec(spec ObjectFieldSpec) (NonCallableObjectFieldSpec, map[string]InputFieldDefinition, []string) {
	if callable, ok := spec.(ObjectCallableSpec); ok {
		return callable.Return, callable.Arguments, callable.ArgOrder
	}
	return spec.(NonCallableObjectFieldSpec), nil, nil
}

/*
isCovariant reports whether objSpec is an acceptable return type for a
field declared as ifaceSpec: same named type, or a narrower type that
sits under ifaceSpec in the type hierarchy (an interface/union's
concrete member), and nullability no more permissive than ifaceSpec
allows a non-null declaration to be violated.
*/
func isCovariant(ifaceSpec, objSpec NonCallableObjectFieldSpec) bool {
	if !ifaceSpec.Nullable() && objSpec.Nullable() {
		return false
	}
	switch iv := ifaceSpec.(type) {
	case ObjectArraySpec:
		ov, ok := objSpec.(ObjectArraySpec)
		if !ok {
			return false
		}
		return isCovariant(iv.Inner, ov.Inner)
	case ObjectLiteralSpec:
		ov, ok := objSpec.(ObjectLiteralSpec)
		if !ok {
			return false
		}
		return typeSatisfies(iv.Type, ov.Type)
	}
	return false
}

/*
typeSatisfies reports whether candidate is an acceptable covariant
narrowing of declared: identical named type, or declared is an
interface/union that candidate (an object type) implements/belongs to.
*/
func typeSatisfies(declared, candidate ObjectTypeSpec) bool {
	if declared.TypeName() == candidate.TypeName() {
		return true
	}
	obj, ok := candidate.(*ObjectType)
	if !ok {
		return false
	}
	switch d := declared.(type) {
	case *InterfaceType:
		for _, impl := range d.Implementers {
			if impl.Name == obj.Name {
				return true
			}
		}
	case *UnionType:
		for _, member := range d.Members {
			if member.Name == obj.Name {
				return true
			}
		}
	}
	return false
}

/*
specIdentical reports whether two input specs describe the identical
type shape (invariant argument types must match the interface exactly,
no covariance for inputs).
*/
func specIdentical(a, b InputFieldSpec) bool {
	if a.Nullable() != b.Nullable() {
		return false
	}
	switch av := a.(type) {
	case InputArraySpec:
		bv, ok := b.(InputArraySpec)
		return ok && specIdentical(av.Inner, bv.Inner)
	case InputLiteralSpec:
		bv, ok := b.(InputLiteralSpec)
		return ok && av.Type.TypeName() == bv.Type.TypeName()
	}
	return false
}

/*
checkInputAcyclicity walks the directed graph of non-nullable,
non-list input-field edges between input types and fails with InputCycle
if a cycle is found - a nullable or list-wrapped self/mutual reference
is fine since a finite value can always be constructed (null, or an
empty/short list), but a required direct cycle can never be satisfied
(spec.md §3.6 "InputCycle").
*/
func checkInputAcyclicity(server *ServerSchema) error {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := map[string]int{}

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			input := server.Inputs[name]
			return &Error{Kind: InputCycle, Location: input.Loc.StartToken.Loc,
				Message: "input type \"" + name + "\" is part of a required reference cycle"}
		}
		state[name] = visiting
		input, ok := server.Inputs[name]
		if !ok {
			state[name] = done
			return nil
		}
		for _, fieldName := range input.FieldOrder {
			lit, isLit := input.Fields[fieldName].Spec.(InputLiteralSpec)
			if !isLit || lit.Nullable() {
				continue
			}
			target, ok := lit.Type.(*InputType)
			if !ok {
				continue
			}
			if err := visit(target.Name); err != nil {
				return err
			}
		}
		state[name] = done
		return nil
	}

	for name := range server.Inputs {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}
