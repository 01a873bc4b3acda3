// Package cli provides the interactive Colegio de Profesionales terminal
// client.
//
// It wires configuration, the persisted session, the API services, and an
// interactive REPL whose command set follows the session's role: anonymous
// visitors can log in, register as members, or browse plans; socios manage
// their own membership, renew it, and read notifications; admins work the
// member, user, payment, and renewal tables.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
