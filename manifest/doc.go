// Package manifest reads cascade extensions from YAML files.
//
// A manifest declares template folders, folders to remove, preassigned data
// and optionally the file extension:
//
//	file_extension: tmpl
//	remove_folders: [theme]
//	folders:
//	  - name: emails
//	    directory: ./emails   # relative to the manifest file
//	    priority: 5
//	data:
//	  - values: {site: Example}
//	  - templates: ["emails::welcome"]
//	    values: {subject: Welcome}
//
// The parsed *Manifest implements cascade.Extension.
package manifest
