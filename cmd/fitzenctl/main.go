// Command fitzenctl administers the Fitzen data directory.
package main

func main() {
	Execute()
}
