// Package ports defines the interfaces that connect the petdb application
// layer to infrastructure adapters.
//
// # Port Interfaces
//
//   - [LineRepository]: reads and rewrites the backing text file line by line
//   - [FileWatcher]: reports external changes to the backing file
//   - [Logger]: structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Adapters (internal/adapters) implement them with the file system, fsnotify
// and zerolog, which keeps the application testable with in-memory fakes.
package ports
