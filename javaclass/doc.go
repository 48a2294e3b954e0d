// Package javaclass models a generated Java class as a tree of members and
// serializes it to source text.
//
// # Members
//
// Three kinds of member exist:
//
//   - Constant: a single public static field (int from a uint32, int from a
//     resource ID, or String)
//   - ResourceArray: a public static final int[] of resource IDs
//   - Class: a named container of members, itself a member
//
// Every member owns a comment.Builder whose text is written immediately
// before the member.
//
// # Pruning
//
// A Class is empty when it was not created with createIfEmpty and all of its
// members are empty. Empty classes write nothing, so a per-type class that
// received no entries disappears from the output. Constants and arrays are
// never empty.
//
// # Usage
//
//	r := javaclass.NewClass("R", javaclass.QualifierNone, true)
//	str := javaclass.NewClass("string", javaclass.QualifierStatic, false)
//	str.AddMember(javaclass.NewResourceMember("app_name", 0x7f030000))
//	r.AddMember(str)
//
//	ok, err := javaclass.WriteJavaFile(out, r, "com.example.app", true)
//
// # Formatting
//
// Indentation and the number of array elements per line come from Format and
// travel with the Writer. The defaults (two spaces, four per line) reproduce
// the layout of the upstream resource compiler byte for byte.
//
// String constants are written between double quotes without any escaping.
package javaclass
