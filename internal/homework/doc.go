// Package homework validates homework-status API responses and turns a
// submission record into the notification text sent to the chat.
//
// Everything here is pure: no I/O, no shared state. The verdict table is a
// fixed mapping and its phrases must stay byte-for-byte stable because chat
// consumers may parse them.
package homework
