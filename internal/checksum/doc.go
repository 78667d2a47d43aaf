// Package checksum provides the file digests used in LIC_FILES_CHKSUM entries.
//
// BitBake verifies license files against an md5 or sha256 digest of the raw
// file bytes, so the calculators here never normalize content: any byte change
// must change the digest.
//
// # Example Usage
//
//	calc, err := checksum.New("md5")
//	if err != nil {
//	    return err
//	}
//	digest := calc.Calculate(content)
//
// # Thread Safety
//
// All calculators are zero-size values and safe for concurrent use.
package checksum
