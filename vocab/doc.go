// Package vocab loads the markup vocabulary: which tags are styled and how,
// and which HTML tags fold to a placeholder.
//
// Vocabularies are YAML documents shaped like [File]:
//
//	tags:
//	  - name: strong
//	    open: <strong>
//	    close: </strong>
//	    style: bold
//	placeholders:
//	  - match: <li>
//	    text: " - "
//
// Documents are converted to JSON and validated against [Schema] before
// they are decoded, so unknown keys and unknown styles are reported with a
// schema error. A missing list falls back to the built-in default.
package vocab
