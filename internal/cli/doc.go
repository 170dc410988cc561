// Package cli implements the mdncal command line front end.
package cli
