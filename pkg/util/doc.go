// Package util provides small helpers shared by the ulidkit commands.
//
//   - Truncate: cap user input before it is echoed into errors or logs
package util
