// Package rsakey implements the textbook RSA key record and the raw
// encrypt/decrypt/sign/verify operations that the attack engine treats as
// black boxes or inverts.
//
// Everything here is deliberately unpadded, unblinded textbook RSA: the
// whole point of the toolkit is to exercise the weaknesses that real
// libraries paper over. Do not use this package to protect anything.
package rsakey
