//go:build !wasm

////////////////////////////////////////////////////////////////////////////////
// Tidelock DAO: stake-locked governance over a shared treasury
////////////////////////////////////////////////////////////////////////////////

package main

// main is left empty on purpose; the wasm build wires the exports.
func main() {

}
