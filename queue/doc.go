/*
Package queue defines tasks to develop the leaves of a growing tree
as well as the Frontier that orders them for best-first growth.
*/
package queue
