// Package shell implements the interactive petdb menu.
//
// The shell is thin glue: it renders the menu and tables, reads user input
// through a [LineReader] (normally a readline instance with history) and
// forwards every operation to an app.Database.
//
//	Pet Database Program.
//	What would you like to do?
//	1) View all pets
//	2) Add new pets
//	3) Remove a pet
//	4) Save
//	5) Exit program
//
// Choosing exit saves the database before returning.
package shell
