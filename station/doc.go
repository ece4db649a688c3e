/*
Package station provides the station directory: loading, indexing,
name resolution, and the on-disk TTL cache.

The directory is an immutable snapshot built once per load. Four derived
indices replace repeated scanning:

  - code -> record
  - exact name -> record
  - city -> ordered station list (source order)
  - city -> primary station (the one named exactly like the city)

Load the directory through a Store, which consults the cache artifact
before fetching from the remote source:

	store := station.NewStore(fetcher, &station.FileStorage{Path: path},
		station.SystemClock(), station.DefaultTTL, log)
	dir, err := store.Load(ctx, false)
	rec, ok := dir.Resolve("上海")
*/
package station
