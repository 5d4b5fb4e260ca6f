// Package testsupport holds fixtures shared by package tests: temp-rooted
// configurations and scripted console input.
package testsupport
