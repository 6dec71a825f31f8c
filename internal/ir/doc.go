// Package ir provides the foundational types shared by every rsqlwhere
// package: the expression tree handed to the translator, the Filter tree it
// produces, and the error type carrying translation failure codes.
//
// This package holds types and error constructors only. All other internal packages
// import ir; ir imports nothing internal.
package ir
