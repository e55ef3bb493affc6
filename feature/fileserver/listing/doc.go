// Package listing renders HTML directory listings for the static file server.
//
// Render is a pure function of the filesystem: it lists a folder's immediate
// children (not recursively, unsorted), links each one below the requested URL
// path and, for anything but the root, adds a single ".." link to the parent URL.
package listing
