// Package rsql parses RSQL/FIQL query strings into ir expression trees.
//
// Grammar:
//
//	expression  = or
//	or          = and { ( "," | "or" ) and }
//	and         = constraint { ( ";" | "and" ) constraint }
//	constraint  = "(" or ")" | comparison
//	comparison  = selector operator arguments
//	operator    = "==" | "!=" | "<" | "<=" | ">" | ">=" | "=" alpha { alpha } "="
//	arguments   = "(" value { "," value } ")" | value
//	value       = unreserved { unreserved } | quoted
//
// AND binds tighter than OR and chains are left-associative, so
// "a==1;b==2,c==3" parses as OR(AND(a,b),c). Unreserved characters are
// everything except whitespace and " ' ( ) ; , = ! ~ < >. The verbose
// keywords "and"/"or" must be separated by whitespace.
//
// The parser accepts any =word= operator; whether the operator is known is
// decided at translation time.
package rsql
