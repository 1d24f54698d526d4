/*
testsuite is meant to be run by implementors of backends to ensure that the behaviors of their provider matches
the expected behavior of the interface. Backends that can be faked in-process call RunConformanceTests from their
own tests; real accounts are exercised with the fpintegration build tag. Note you may need to pass additional
environmental variables for authentication.

	FP_INTEGRATION_BACKENDS="file:/;dbx:;webdav:/fp_test" \
	FP_DROPBOX_ACCESS_TOKEN=... \
	FP_WEBDAV_URL=https://dav.example.com FP_WEBDAV_USER=me FP_WEBDAV_PASSWORD=secret \
	go test -tags fpintegration ./backend/testsuite
*/
package testsuite
