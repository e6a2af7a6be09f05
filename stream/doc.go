// Package stream reads and writes integer record files.
//
// A record file is a plain sequence of records with no file header, footer or
// checksum:
//
//	record := count:uint32  value:uint32 × count
//
// Counts and values use the byte order of the host that wrote the file unless a
// byte order option says otherwise. A file must end right after a complete
// record; anything else is corruption.
//
// # Reading
//
//	r, err := stream.NewReader("postings.bin")
//	if err != nil {
//	    return err
//	}
//	if err := r.Open(); err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	var buf []uint32
//	for {
//	    ok, err := r.LoadIntegers(&buf)
//	    if err != nil {
//	        return err // errs.ErrCorruptData or errs.ErrIO
//	    }
//	    if !ok {
//	        break
//	    }
//	    // use buf
//	}
//
// The end of the stream is (false, nil), never an error. A truncated payload is
// an error wrapping errs.ErrCorruptData, and the Reader refuses further reads
// until it is reopened. A count field cut short at the end of the file ends the
// stream; TrailingBytes reports it, and WithStrictHeader turns it into an error.
//
// Readers own their file handle exclusively. Clone and Reset return or leave a
// Reader without a handle, so two Readers never share a file position.
//
// # Writing
//
//	w, err := stream.CreateWriter("postings.bin")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	err = w.WriteRecord([]uint32{1, 2, 3})
package stream
