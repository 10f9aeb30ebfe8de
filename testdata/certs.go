// Package testdata holds certificates and keys used by tests.
//
// The fixtures were produced with ssh-keygen: an ed25519 CA signing one
// user certificate per key family (serial 2, key id "abc", principal
// "root", valid forever), plus a host certificate, a certificate
// carrying critical options, and a KRL revoking serial 7.
package testdata

import "encoding/base64"

var CAPub = []byte("ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAII11JTCXjmMMkqplWIwzbzFX7Tsey7CHUWVIKBEaazxE ca")

var RSAUserCert = []byte("ssh-rsa-cert-v01@openssh.com AAAAHHNzaC1yc2EtY2VydC12MDFAb3BlbnNzaC5jb20AAAAggpX/2+CoxPes0fKqVHRZ2rTMQSB96epvYJGqI9DVlksAAAADAQABAAABgQCyxFaxva8DEXTTP9W/iyewvBdFaTKkkkNwhMFPQxT5YNOh68xeMEQhFOjyeMg67ogV97njWQEWTqnD8W0/hBSlrgFVZf/p5aLojSeyCJb+THXDLJuorS5YB0OrKl1XmcfaRMSipwmbe+Kipf1hV/qJs6bGrW3FGcsyiWL4x+ijUl4Z744awLS2gQaD/9xzyTcELJy0npmsoqj9dBq4ZuDTbSaXp427rQAnbMPS3ombw1X/QYDfU8CzGA1YmSk0yNjT8VtVNs1KwcnlxFM2dFjZNX7urA4s04P1yDxKCRf3ej36aI//3Va+w2wsCCIs1YpMNAkiFMxWcmiv51GSj3HRTzLOIV1iNFdnt1n8dScrFXBSsxBDpN7/SAXpzufAWngISejKkn0PylU1W2/ODvnutcGmcuhW6MWjeQTcWZ5aBRwLoxDFBvKXxvyuQnANydnxsKIP1X8B4lPi29VH1j8+Y2ESBqazmCNyvqTZhfb/gSaaO6bwTgcyDoN0hUTpRGkAAAAAAAAAAgAAAAEAAAADYWJjAAAACAAAAARyb290AAAAAAAAAAD//////////wAAAAAAAACCAAAAFXBlcm1pdC1YMTEtZm9yd2FyZGluZwAAAAAAAAAXcGVybWl0LWFnZW50LWZvcndhcmRpbmcAAAAAAAAAFnBlcm1pdC1wb3J0LWZvcndhcmRpbmcAAAAAAAAACnBlcm1pdC1wdHkAAAAAAAAADnBlcm1pdC11c2VyLXJjAAAAAAAAAAAAAAAzAAAAC3NzaC1lZDI1NTE5AAAAII11JTCXjmMMkqplWIwzbzFX7Tsey7CHUWVIKBEaazxEAAAAUwAAAAtzc2gtZWQyNTUxOQAAAEC54xyWExWJ+pTHnnKAOmLXLQ+KvzFMeTGmeg/xOSE4Ye8Dz1l/sH0ZDyaItdUQHTOvmHu8uf78WDpIJAmuIsAM user@rsa")

var DSAUserCert = []byte("ssh-dss-cert-v01@openssh.com AAAAHHNzaC1kc3MtY2VydC12MDFAb3BlbnNzaC5jb20AAAAgVv9VJHynqhtxhKXT41xeFKUQ5wABelWL2Z3pxpjUp6cAAACBANTVVVoFqs8hwhUqWgVQ50XVWilBgn9svO7wSMgQZB8/5GWjyLue1ebZRmpYdNrjP5EYPJs4/koBlUpjMx2DEaIV3/LbHs0C3GSQyxHHakiFHBX9tuGiN4Qto/XQEjJ3BBEFe6PVX96KFVZ6/bYABhhBndc2RCI29joNgwC7+gCNAAAAFQDasOiZrYOicezLBOoCHmzPZISGuQAAAIEAi+eOQp216bdUUhL2I02dnoNd2E7G0Y6A8ga6HB7Shi1WC7SlsbQI2+Q4IuUesNYsWdUeg9cpRhHUq6eBeQpjR7nIK7njXNHONtwQamST3F7PKHEcDXUs0OJXZOBa9iLh48cVMHLa8KckphxM787zz63ZYLH45hxRuOTFQR9B72sAAACANvyRi+c0jYf+0reWSiBckefReZRrXcQ0tC7xQN8WQs6pFDMgVU7eGnc/9yGSAh0WUD/1AYjNmX1DAK14Ltpf8bjBBfWD2RD5QBr7TllpvxDNxOfWf+o9uoceYRz4U/sZ1ZJTKFuIEFYPuPU5+qeC67AfYxfvzJektgakVeEZP+UAAAAAAAAAAgAAAAEAAAADYWJjAAAACAAAAARyb290AAAAAAAAAAD//////////wAAAAAAAACCAAAAFXBlcm1pdC1YMTEtZm9yd2FyZGluZwAAAAAAAAAXcGVybWl0LWFnZW50LWZvcndhcmRpbmcAAAAAAAAAFnBlcm1pdC1wb3J0LWZvcndhcmRpbmcAAAAAAAAACnBlcm1pdC1wdHkAAAAAAAAADnBlcm1pdC11c2VyLXJjAAAAAAAAAAAAAAAzAAAAC3NzaC1lZDI1NTE5AAAAII11JTCXjmMMkqplWIwzbzFX7Tsey7CHUWVIKBEaazxEAAAAUwAAAAtzc2gtZWQyNTUxOQAAAEAdXyS7AZD/+Rb9XiDVkpSHGpJLu8lFnMfXakO3Gwxeyw5FZ5zornN4fitYvuIYXB5x38iu8/PurAsrIXGo+nAD u")

var ECDSA256UserCert = []byte("ecdsa-sha2-nistp256-cert-v01@openssh.com AAAAKGVjZHNhLXNoYTItbmlzdHAyNTYtY2VydC12MDFAb3BlbnNzaC5jb20AAAAg9WR6jjzDKweEP4c/hCaTj/91zXbpYaeDchssyNOSmpsAAAAIbmlzdHAyNTYAAABBBKcFyKMoKbTXsJ1s39wxxyoWiQ2/fy60WIiePq6XbCVeYK0IJhUgrJAmGHIgdxB5ITdVPkBDHuRLYth+ak041w8AAAAAAAAAAgAAAAEAAAADYWJjAAAACAAAAARyb290AAAAAAAAAAD//////////wAAAAAAAACCAAAAFXBlcm1pdC1YMTEtZm9yd2FyZGluZwAAAAAAAAAXcGVybWl0LWFnZW50LWZvcndhcmRpbmcAAAAAAAAAFnBlcm1pdC1wb3J0LWZvcndhcmRpbmcAAAAAAAAACnBlcm1pdC1wdHkAAAAAAAAADnBlcm1pdC11c2VyLXJjAAAAAAAAAAAAAAAzAAAAC3NzaC1lZDI1NTE5AAAAII11JTCXjmMMkqplWIwzbzFX7Tsey7CHUWVIKBEaazxEAAAAUwAAAAtzc2gtZWQyNTUxOQAAAEB2RgyUHbg0YyHt39KYPqrBKfi9Z975LJ1JVaZGtfKuURZIrlqQZWvkcL6cAmkiAzkAFVSED6sEFkotC2zqEEsD u")

var ECDSA384UserCert = []byte("ecdsa-sha2-nistp384-cert-v01@openssh.com AAAAKGVjZHNhLXNoYTItbmlzdHAzODQtY2VydC12MDFAb3BlbnNzaC5jb20AAAAgaJameKDhnQ49MP62RzR34B4XA3gEX/JUyKLAZEvgbVsAAAAIbmlzdHAzODQAAABhBJdnngKbEqcTumiPRI+p/JzwBvVJf3UgJGnfma4G5GXcK1mK2Rbr/XxswoYgNcdOkb0o94EoyGLe0K2vHvgYo9lBxNcTUTz+OfMj11kPdB8+tkGHgXSkUd7GS6urJa8aEQAAAAAAAAACAAAAAQAAAANhYmMAAAAIAAAABHJvb3QAAAAAAAAAAP//////////AAAAAAAAAIIAAAAVcGVybWl0LVgxMS1mb3J3YXJkaW5nAAAAAAAAABdwZXJtaXQtYWdlbnQtZm9yd2FyZGluZwAAAAAAAAAWcGVybWl0LXBvcnQtZm9yd2FyZGluZwAAAAAAAAAKcGVybWl0LXB0eQAAAAAAAAAOcGVybWl0LXVzZXItcmMAAAAAAAAAAAAAADMAAAALc3NoLWVkMjU1MTkAAAAgjXUlMJeOYwySqmVYjDNvMVftOx7LsIdRZUgoERprPEQAAABTAAAAC3NzaC1lZDI1NTE5AAAAQA29aUzbDrqS1vwa7zbeq/ax6/VKxNcdoujdbfx/PTXDFPBy+XQlvTHrvZOB6vf4Ro5A9N1aIabtC51+Xzvw8Qc= u")

var ECDSA521UserCert = []byte("ecdsa-sha2-nistp521-cert-v01@openssh.com AAAAKGVjZHNhLXNoYTItbmlzdHA1MjEtY2VydC12MDFAb3BlbnNzaC5jb20AAAAgOXYQAFTuMCKuv/WZ9Sr9Gti9JKcZ4S3aUVIkHUNxiEQAAAAIbmlzdHA1MjEAAACFBAEVa4X0xre5anowDzlUZg54RcgHAJMmFG4rFkS8XyY+z4cSCAGqPKL2cy+LcCJHPSxgY4odAFSp3zQcGtd7G+Yp7wC28QsJN/7ZE+hGpwQJkcntekRPqHAKqt8AW/anw6NPtOlpRtcA+Tite6YVVUDjcN5dL3J2afIaLadGmy8z2CC8xAAAAAAAAAACAAAAAQAAAANhYmMAAAAIAAAABHJvb3QAAAAAAAAAAP//////////AAAAAAAAAIIAAAAVcGVybWl0LVgxMS1mb3J3YXJkaW5nAAAAAAAAABdwZXJtaXQtYWdlbnQtZm9yd2FyZGluZwAAAAAAAAAWcGVybWl0LXBvcnQtZm9yd2FyZGluZwAAAAAAAAAKcGVybWl0LXB0eQAAAAAAAAAOcGVybWl0LXVzZXItcmMAAAAAAAAAAAAAADMAAAALc3NoLWVkMjU1MTkAAAAgjXUlMJeOYwySqmVYjDNvMVftOx7LsIdRZUgoERprPEQAAABTAAAAC3NzaC1lZDI1NTE5AAAAQNllS4V7s3bDStE6HGfCxpGYzOnTyeqgEti+T+K3HVLlZ8M50D1QxBS6v7LX7qhygcWZ9BCEbS4oA8Pgy3N3xg4= u")

var Ed25519UserCert = []byte("ssh-ed25519-cert-v01@openssh.com AAAAIHNzaC1lZDI1NTE5LWNlcnQtdjAxQG9wZW5zc2guY29tAAAAICH/F5LQkbpb19RsEPV42ATKcIhgYMI7VB+Ok1dWMVhXAAAAIDz5KC2w2tsVsVKCUYr1JzFQHYepTDBCFhoircNSxZ/rAAAAAAAAAAIAAAABAAAAA2FiYwAAAAgAAAAEcm9vdAAAAAAAAAAA//////////8AAAAAAAAAggAAABVwZXJtaXQtWDExLWZvcndhcmRpbmcAAAAAAAAAF3Blcm1pdC1hZ2VudC1mb3J3YXJkaW5nAAAAAAAAABZwZXJtaXQtcG9ydC1mb3J3YXJkaW5nAAAAAAAAAApwZXJtaXQtcHR5AAAAAAAAAA5wZXJtaXQtdXNlci1yYwAAAAAAAAAAAAAAMwAAAAtzc2gtZWQyNTUxOQAAACCNdSUwl45jDJKqZViMM28xV+07Hsuwh1FlSCgRGms8RAAAAFMAAAALc3NoLWVkMjU1MTkAAABARXfYvWngf+Y1qZft5myl662HaTAVMdaFV7QHsT+cqZmx7OBpRgv5VvUlcPkT9IsfNQM2KpN82XE6MU/vYZT1BQ== user@ed25519")

var RSAHostCert = []byte("ssh-rsa-cert-v01@openssh.com AAAAHHNzaC1yc2EtY2VydC12MDFAb3BlbnNzaC5jb20AAAAgV/exApZ3JNvJd6gZCm9zqHqUu1NWY+cSvRiXiNsReT8AAAADAQABAAABgQCyxFaxva8DEXTTP9W/iyewvBdFaTKkkkNwhMFPQxT5YNOh68xeMEQhFOjyeMg67ogV97njWQEWTqnD8W0/hBSlrgFVZf/p5aLojSeyCJb+THXDLJuorS5YB0OrKl1XmcfaRMSipwmbe+Kipf1hV/qJs6bGrW3FGcsyiWL4x+ijUl4Z744awLS2gQaD/9xzyTcELJy0npmsoqj9dBq4ZuDTbSaXp427rQAnbMPS3ombw1X/QYDfU8CzGA1YmSk0yNjT8VtVNs1KwcnlxFM2dFjZNX7urA4s04P1yDxKCRf3ej36aI//3Va+w2wsCCIs1YpMNAkiFMxWcmiv51GSj3HRTzLOIV1iNFdnt1n8dScrFXBSsxBDpN7/SAXpzufAWngISejKkn0PylU1W2/ODvnutcGmcuhW6MWjeQTcWZ5aBRwLoxDFBvKXxvyuQnANydnxsKIP1X8B4lPi29VH1j8+Y2ESBqazmCNyvqTZhfb/gSaaO6bwTgcyDoN0hUTpRGkAAAAAAAAACQAAAAIAAAAIaG9zdGNlcnQAAAAUAAAAEGhvc3QuZXhhbXBsZS5jb20AAAAAAAAAAP//////////AAAAAAAAAAAAAAAAAAAAMwAAAAtzc2gtZWQyNTUxOQAAACCNdSUwl45jDJKqZViMM28xV+07Hsuwh1FlSCgRGms8RAAAAFMAAAALc3NoLWVkMjU1MTkAAABAMnUrdQjMyDaeSPZKLbAOSwv5weUuSStfGjBoNYEG49jDD+SpzVNrXDmhD0FqkMSASACLwmIVZsaHwfBoA8BBAw== user@rsa")

var OptionsCert = []byte("ssh-ed25519-cert-v01@openssh.com AAAAIHNzaC1lZDI1NTE5LWNlcnQtdjAxQG9wZW5zc2guY29tAAAAIAkg2FHG/IG7bTcThRexCHyzESPZRtAEi+HU8Ba4E+StAAAAIDz5KC2w2tsVsVKCUYr1JzFQHYepTDBCFhoircNSxZ/rAAAAAAAAAAcAAAABAAAAB29wdGNlcnQAAAARAAAABHJvb3QAAAAFYWRtaW4AAAAAAAAAAP//////////AAAASgAAAA1mb3JjZS1jb21tYW5kAAAAEQAAAA0vdXNyL2Jpbi90cnVlAAAADnNvdXJjZS1hZGRyZXNzAAAADgAAAAoxMC4wLjAuMC84AAAAggAAABVwZXJtaXQtWDExLWZvcndhcmRpbmcAAAAAAAAAF3Blcm1pdC1hZ2VudC1mb3J3YXJkaW5nAAAAAAAAABZwZXJtaXQtcG9ydC1mb3J3YXJkaW5nAAAAAAAAAApwZXJtaXQtcHR5AAAAAAAAAA5wZXJtaXQtdXNlci1yYwAAAAAAAAAAAAAAMwAAAAtzc2gtZWQyNTUxOQAAACCNdSUwl45jDJKqZViMM28xV+07Hsuwh1FlSCgRGms8RAAAAFMAAAALc3NoLWVkMjU1MTkAAABAA18luOBNaVYVTFkEiwwYBZgtv2KIifEq/aOqdW46j3emV6SNBtkgZZdFkpgRc3na15sdHxV1xAWr+W8UWWXqDQ== user@ed25519")

// RevokedKRL revokes certificate serial 7 (OptionsCert).
var RevokedKRL, _ = base64.StdEncoding.DecodeString("U1NIS1JMCgAAAAABAAAAAAAAAAEAAAAAanO7mgAAAAAAAAAAAAAAAAAAAAABAAAASAAAADMAAAALc3NoLWVkMjU1MTkAAAAgjXUlMJeOYwySqmVYjDNvMVftOx7LsIdRZUgoERprPEQAAAAAIAAAAAgAAAAAAAAABw==")
