// Package engine runs the whole pipeline over a Java source file: it finds
// the doc comments with package javadoc, styles them with package
// highlight, and folds them with package fold, using one vocabulary for
// both.
package engine
