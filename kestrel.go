// Package kestrel generates Java R classes from resource manifests.
package kestrel

// Version is the current kestrel release.
const Version = "0.1.0"
