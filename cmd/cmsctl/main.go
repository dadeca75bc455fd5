// Command cmsctl seeds, exports and imports the CMS document through the
// same storage strategy the API server would select.
package main

func main() {
	Execute()
}
