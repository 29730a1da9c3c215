package sqlinline

const QInsertExportJob = `--sql 585b66f9-1a4f-4976-8374-0ab443cec49c
insert into export_jobs (id, user_id, format, from_day, to_day, status, created_at, updated_at)
values (gen_random_uuid(), $1::uuid, $2::text, nullif($3::text, '')::date, nullif($4::text, '')::date, 'QUEUED', now(), now())
returning id, user_id, format, coalesce(from_day::text, ''), coalesce(to_day::text, ''), status,
          coalesce(storage_key, ''), coalesce(error_message, ''), created_at, updated_at;
`

const QSelectExportJob = `--sql 8180dd31-e002-4354-8943-e12e5dc078c8
select id, user_id, format, coalesce(from_day::text, ''), coalesce(to_day::text, ''), status,
       coalesce(storage_key, ''), coalesce(error_message, ''), created_at, updated_at
from export_jobs
where id = $1::uuid
  and user_id = $2::uuid
limit 1;
`

const QClaimExportJob = `--sql fcbd2656-38b3-4577-adee-2491aa795adc
with next_job as (
    select id
    from export_jobs
    where status = 'QUEUED'
    order by created_at asc
    for update skip locked
    limit 1
),
updated as (
    update export_jobs
    set status = 'RUNNING', updated_at = now()
    where id in (select id from next_job)
    returning id, user_id, format, coalesce(from_day::text, ''), coalesce(to_day::text, ''), status,
              coalesce(storage_key, ''), coalesce(error_message, ''), created_at, updated_at
)
select * from updated;
`

const QFinishExportJob = `--sql 9a6bd0e7-4438-4a7c-9f35-f0b0cc9eb912
update export_jobs set
    status = $2::text,
    storage_key = nullif($3::text, ''),
    error_message = nullif($4::text, ''),
    updated_at = now()
where id = $1::uuid;
`
