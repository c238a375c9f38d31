// Package commands defines the twodes CLI and wires dependencies for
// subcommands.
//
// # Commands
//
//   - encrypt     Encrypt hex blocks with the configured oracle
//   - trace       Print every round of one encryption
//   - bench       Time repeated encryptions and project a brute-force search
//   - estimate    Project a brute-force search from a known per-call cost
//   - ddt         Print the differential distribution table of one S-box
//   - vectors     Generate or check plaintext/ciphertext corpora
//   - verify      Cross-check the configured oracle against the reference
//
// # Implementation
//
// The root command builds an app.App from the persistent flags before any
// subcommand runs. --oracle-bin or --oracle-url select the oracle under test;
// without either, the in-process cipher under --key is used.
package commands
