// Package roster indexes what each participant owns and ranks participants
// by how few options they have. Both structures are built once per run and
// are read-only afterwards.
package roster
