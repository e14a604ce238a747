// Package monitor reports the resident memory of the server process.
//
// A Reporter samples RSS through gopsutil once per interval and logs it as
// "Server load" with a band (low, normal, elevated, high, critical) that also
// picks the log level. The report is for operators only and has no effect on
// request handling.
package monitor
