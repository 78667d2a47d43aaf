// Package files groups file access for the generator.
//
// Sub-packages:
//   - filesystem: filesystem abstraction (OS and in-memory) used to read license
//     files and templates and to write the generated recipe atomically
package files
