/*
Package scanner defines tokens and an interface for scanners to be used with
the expression parser of package terexlang.

A default scanner implementation is an adapter for lexmachine, living in
sub-package `lexmach`.

Tokens carry a span of byte offsets into the input. Parse errors refer to
these offsets, so clients are able to point to the offending position in a
line of input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner
