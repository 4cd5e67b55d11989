// Package schema translates server-declared parameter manifests into typed,
// validated descriptors, and renders descriptor sets as JSON Schema for
// framework adapters.
//
// Translation is pure: it either produces a descriptor set or fails with a
// configuration error ([UnsupportedTypeError], [DuplicateParameterError]).
// Descriptors are immutable value data shared freely between tool instances.
package schema
