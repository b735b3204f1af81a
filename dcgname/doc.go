// Package dcgname provides a default implementation of dcg.Name: an
// interned string-labeled identity supporting pairing, forking, and
// gensym, the collaborator a host wires in when it wants stable
// nominal memoization keys instead of structural argument matching.
//
// The identity scheme follows lvlath/builder's id-function style
// (builder.IDFn: pure, deterministic, panics only on programmer
// error): every constructor here is a pure function from its inputs to
// a Name, except Gensym, which is explicitly impure by design (fresh
// identity on every call, backed by google/uuid).
package dcgname
