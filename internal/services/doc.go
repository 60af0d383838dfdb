// Package services holds the application services that sit between the shell
// and the repositories: account registration and authentication, and the
// per-owner conversion ledger. Services translate repository failures into
// the sentinel errors of package common.
package services
