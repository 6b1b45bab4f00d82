package recording

// sourceOnlyProtocols are protocol names the frontend may list in an
// inheritance clause that have no target-language equivalent declaration
// at all; their behavior is synthesized by a later rewrite pass instead
// (Equatable by the equatable-operators pass, CustomStringConvertible by
// description-to-toString, RawRepresentable by raw-values-members).
var sourceOnlyProtocols = map[string]bool{
	"Equatable":               true,
	"Hashable":                true,
	"CustomStringConvertible": true,
	"Codable":                 true,
	"Encodable":               true,
	"Decodable":               true,
	"Comparable":              true,
	"RawRepresentable":        true,
	"Identifiable":            true,
	"Sendable":                true,
	"CaseIterable":            true,
}

// intRawFamily and stringRawFamily name the inheritance-clause spellings
// that mark an enum as raw-representable by an integer or a string,
// rather than naming an actual supertype.
var intRawFamily = map[string]bool{
	"Int": true, "Int8": true, "Int16": true, "Int32": true, "Int64": true,
	"UInt": true, "UInt8": true, "UInt16": true, "UInt32": true, "UInt64": true,
}

var stringRawFamily = map[string]bool{"String": true}

func isRawFamily(name string) bool { return intRawFamily[name] || stringRawFamily[name] }
